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
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

const (
	// SignificanceLevel is the p-value at or below which two samples are
	// considered to come from different distributions.
	SignificanceLevel = 0.05

	// ExactSizeLimit is the largest sample size for which the exact p-value is
	// computed, the asymptotic distribution is used when either sample is larger.
	ExactSizeLimit = 10000
)

var (
	// ErrEmptySample is returned when a sample has no values.
	ErrEmptySample = errors.New("sample must not be empty")

	// ErrNaNSample is returned when a sample contains NaN.
	ErrNaNSample = errors.New("sample must not contain NaN")
)

// Result is the outcome of a two-sample Kolmogorov-Smirnov test.
type Result struct {
	// Statistic is the maximum distance between the empirical distribution functions.
	Statistic float64

	// PValue is the two-sided p-value.
	PValue float64
}

// IsSameDistribution returns whether the samples are considered to come from
// the same distribution.
func (r *Result) IsSameDistribution() bool {
	return IsSameDistribution(r.PValue)
}

// IsSameDistribution classifies a p-value against SignificanceLevel.
func IsSameDistribution(pvalue float64) bool {
	return pvalue > SignificanceLevel
}

// KS2Samp runs the two-sided two-sample Kolmogorov-Smirnov test. The inputs
// are not modified.
func KS2Samp(data1, data2 []float64) (*Result, error) {
	n1, n2 := len(data1), len(data2)
	if n1 == 0 || n2 == 0 {
		return nil, ErrEmptySample
	}

	x, err := sorted(data1)
	if err != nil {
		return nil, err
	}

	y, err := sorted(data2)
	if err != nil {
		return nil, err
	}

	h := maxDistance(x, y)
	if h == 0 {
		return &Result{Statistic: 0, PValue: 1}, nil
	}

	d := float64(h) / (float64(n1) * float64(n2))
	var pvalue float64
	if n1 <= ExactSizeLimit && n2 <= ExactSizeLimit {
		pvalue = exactPValue(n1, n2, h)
	} else {
		pvalue = asymptoticPValue(n1, n2, d)
	}

	return &Result{
		Statistic: d,
		PValue:    math.Min(math.Max(pvalue, 0), 1),
	}, nil
}

func sorted(data []float64) ([]float64, error) {
	s := make([]float64, len(data))
	for i, v := range data {
		if math.IsNaN(v) {
			return nil, ErrNaNSample
		}
		s[i] = v
	}

	sort.Float64s(s)
	return s, nil
}

// maxDistance returns n1*n2 times the KS statistic, it is exact as
// |F1(v) - F2(v)| = |c1*n2 - c2*n1| / (n1*n2) for the counts c1, c2 <= v.
func maxDistance(x, y []float64) int64 {
	n1, n2 := len(x), len(y)

	var i, j int
	var h int64
	for i < n1 || j < n2 {
		var v float64
		if j >= n2 || (i < n1 && x[i] <= y[j]) {
			v = x[i]
		} else {
			v = y[j]
		}

		for i < n1 && x[i] == v {
			i++
		}

		for j < n2 && y[j] == v {
			j++
		}

		diff := int64(i)*int64(n2) - int64(j)*int64(n1)
		if diff < 0 {
			diff = -diff
		}

		if diff > h {
			h = diff
		}
	}

	return h
}

// exactPValue returns the probability that a uniformly random interleaving of
// the two samples reaches distance h, walking the lattice from (0, 0) to
// (n1, n2) and keeping the mass of paths strictly inside the band.
func exactPValue(n1, n2 int, h int64) float64 {
	prev := make([]float64, n2+1)
	cur := make([]float64, n2+1)
	for i := 0; i <= n1; i++ {
		for j := 0; j <= n2; j++ {
			if i == 0 && j == 0 {
				cur[j] = 1
				continue
			}

			diff := int64(i)*int64(n2) - int64(j)*int64(n1)
			if diff >= h || -diff >= h {
				cur[j] = 0
				continue
			}

			var p float64
			if i > 0 {
				p += prev[j] * float64(n1-i+1) / float64(n1+n2-i-j+1)
			}

			if j > 0 {
				p += cur[j-1] * float64(n2-j+1) / float64(n1+n2-i-j+1)
			}

			cur[j] = p
		}

		prev, cur = cur, prev
	}

	return 1 - prev[n2]
}

// asymptoticPValue evaluates the two-sided one-sample Kolmogorov-Smirnov
// distribution at the effective sample size n1*n2/(n1+n2), rounded half to even.
func asymptoticPValue(n1, n2 int, d float64) float64 {
	en := math.RoundToEven(float64(n1) * float64(n2) / float64(n1+n2))
	return kolmogorovSmirnovSF(int(en), d)
}

// Summary describes a sample.
type Summary struct {
	Size   int
	Mean   float64
	Median float64
}

// Summarize returns the size, mean and median of a sample.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrEmptySample
	}

	raw := stats.LoadRawData(data)
	mean, err := stats.Mean(raw)
	if err != nil {
		return Summary{}, err
	}

	median, err := stats.Median(raw)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Size:   len(data),
		Mean:   mean,
		Median: median,
	}, nil
}
