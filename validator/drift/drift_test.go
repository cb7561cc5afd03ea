/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package drift

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(start float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = start + float64(i)
	}

	return s
}

func TestKS2Samp(t *testing.T) {
	tests := []struct {
		name   string
		data1  []float64
		data2  []float64
		expect func(t *testing.T, r *Result, err error)
	}{
		{
			name:  "identical samples",
			data1: []float64{1, 2, 3, 4, 5},
			data2: []float64{5, 4, 3, 2, 1},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(0.0, r.Statistic)
				assert.Equal(1.0, r.PValue)
				assert.True(r.IsSameDistribution())
			},
		},
		{
			name:  "constant samples far apart",
			data1: []float64{1, 1, 1, 1, 1},
			data2: []float64{100, 100, 100, 100, 100},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1.0, r.Statistic)
				assert.InDelta(2.0/252.0, r.PValue, 1e-12)
				assert.False(r.IsSameDistribution())
			},
		},
		{
			name:  "disjoint samples",
			data1: []float64{1, 2, 3, 4},
			data2: []float64{5, 6, 7, 8},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1.0, r.Statistic)
				assert.InDelta(2.0/70.0, r.PValue, 1e-12)
				assert.False(r.IsSameDistribution())
			},
		},
		{
			name:  "overlapping samples of different sizes",
			data1: []float64{1, 2, 3, 4, 5},
			data2: []float64{3, 4, 5, 6, 7, 8},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.5, r.Statistic, 1e-12)
				assert.InDelta(165.0/462.0, r.PValue, 1e-12)
				assert.True(r.IsSameDistribution())
			},
		},
		{
			name:  "interleaved samples",
			data1: []float64{0.1, 0.5, 0.9, 1.3, 2.0, 2.2},
			data2: []float64{0.4, 0.6, 1.0, 1.1, 1.9},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(1.0/3.0, r.Statistic, 1e-12)
				assert.InDelta(378.0/462.0, r.PValue, 1e-12)
			},
		},
		{
			name:  "large shifted samples",
			data1: sequence(0, 100),
			data2: sequence(50, 100),
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.5, r.Statistic, 1e-12)
				assert.Less(r.PValue, 1e-9)
				assert.False(r.IsSameDistribution())
			},
		},
		{
			name:  "large close samples",
			data1: sequence(0, 100),
			data2: sequence(5, 100),
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.05, r.Statistic, 1e-12)
				assert.InDelta(0.9996892272702654, r.PValue, 1e-9)
				assert.True(r.IsSameDistribution())
			},
		},
		{
			name:  "samples near the significance level use exact distribution",
			data1: sequence(0, 100),
			data2: sequence(19, 100),
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.19, r.Statistic, 1e-12)
				assert.InDelta(0.05390207893129895, r.PValue, 1e-9)
				assert.True(r.IsSameDistribution())
			},
		},
		{
			name:  "samples larger than exact size limit use asymptotic distribution",
			data1: sequence(0, 2*ExactSizeLimit),
			data2: sequence(200, 2*ExactSizeLimit),
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.01, r.Statistic, 1e-12)
				assert.InDelta(0.2682191277029192, r.PValue, 1e-6)
				assert.True(r.IsSameDistribution())
			},
		},
		{
			name:  "infinite values",
			data1: []float64{math.Inf(-1), 0, math.Inf(1)},
			data2: []float64{math.Inf(-1), 0, math.Inf(1)},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1.0, r.PValue)
			},
		},
		{
			name:  "empty sample",
			data1: []float64{1},
			data2: []float64{},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, ErrEmptySample)
				assert.Nil(r)
			},
		},
		{
			name:  "sample with NaN",
			data1: []float64{1, math.NaN()},
			data2: []float64{1, 2},
			expect: func(t *testing.T, r *Result, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, ErrNaNSample)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := KS2Samp(tc.data1, tc.data2)
			tc.expect(t, r, err)
		})
	}
}

func TestKS2Samp_Deterministic(t *testing.T) {
	assert := assert.New(t)
	data1 := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	data2 := []float64{2, 7, 1, 8, 2, 8, 1, 8, 2}

	first, err := KS2Samp(data1, data2)
	assert.NoError(err)
	second, err := KS2Samp(data1, data2)
	assert.NoError(err)
	assert.Equal(first, second)

	// Inputs are left untouched.
	assert.Equal([]float64{3, 1, 4, 1, 5, 9, 2, 6}, data1)
}

func TestIsSameDistribution(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsSameDistribution(1))
	assert.True(IsSameDistribution(0.0500001))
	assert.False(IsSameDistribution(SignificanceLevel))
	assert.False(IsSameDistribution(0))
}

func TestKolmogorovSmirnovSF(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		x      float64
		expect float64
		delta  float64
	}{
		{name: "zero statistic", n: 10, x: 0, expect: 1, delta: 0},
		{name: "statistic of one", n: 10, x: 1, expect: 0, delta: 0},
		{name: "single observation", n: 1, x: 0.7, expect: 0.6, delta: 1e-12},
		{name: "below 1/n", n: 10, x: 0.08, expect: 0.9999978058034054, delta: 1e-12},
		{name: "above 1-1/n", n: 10, x: 0.95, expect: 1.953125e-13, delta: 1e-20},
		{name: "statistic at least one half", n: 10, x: 0.6, expect: 0.0005681672, delta: 1e-12},
		{name: "small n with matrix method", n: 50, x: 0.2, expect: 0.031438777769534076, delta: 1e-10},
		{name: "small n in the tail", n: 50, x: 0.4, expect: 9.863563364410281e-08, delta: 1e-14},
		{name: "large n with matrix method", n: 1000, x: 0.01, expect: 0.9999496745370611, delta: 1e-9},
		{name: "large n in the tail", n: 1000, x: 0.05, expect: 0.013012071309977613, delta: 1e-8},
		{name: "large n with asymptotic expansion", n: 1000, x: 0.03, expect: 0.3226902464133049, delta: 1e-6},
		{name: "effective size of asymptotic samples", n: 10000, x: 0.01, expect: 0.2682191277029192, delta: 1e-6},
		{name: "far tail", n: 10000, x: 0.2, expect: 0, delta: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.InDelta(tc.expect, kolmogorovSmirnovSF(tc.n, tc.x), tc.delta)
		})
	}
}

func TestSummarize(t *testing.T) {
	assert := assert.New(t)
	s, err := Summarize([]float64{4, 1, 3, 2, 10})
	assert.NoError(err)
	assert.Equal(5, s.Size)
	assert.InDelta(4.0, s.Mean, 1e-12)
	assert.InDelta(3.0, s.Median, 1e-12)

	_, err = Summarize(nil)
	assert.ErrorIs(err, ErrEmptySample)
}
