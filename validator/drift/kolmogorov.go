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

import "math"

// minLog is the log of the smallest normal float64.
var minLog = math.Log(0x1p-1022)

// kolmogorovSmirnovSF returns P(D_n >= x) for the two-sided one-sample
// Kolmogorov-Smirnov statistic D_n. The method is chosen by n and n*x*x as
// described by Simard and L'Ecuyer.
func kolmogorovSmirnovSF(n int, x float64) float64 {
	if n < 1 || x <= 0 {
		return 1
	}

	if x >= 1 {
		return 0
	}

	fn := float64(n)
	t := fn * x

	// Ruben and Gambino give closed forms near both ends of the support.
	if t <= 1 {
		if t <= 0.5 {
			return 1
		}

		lg, _ := math.Lgamma(fn + 1)
		return 1 - math.Exp(lg-fn*math.Log(fn)+fn*math.Log(2*t-1))
	}

	if t >= fn-1 {
		return 2 * math.Pow(1-x, fn)
	}

	if x >= 0.5 {
		return 2 * smirnovSF(n, x)
	}

	nxx := t * x
	if n <= 140 {
		if nxx <= 4 {
			return 1 - durbinCDF(n, x)
		}

		return 2 * smirnovSF(n, x)
	}

	if nxx >= 370 {
		return 0
	}

	if nxx >= 2.2 {
		return math.Min(2*smirnovSF(n, x), 1)
	}

	if n <= 100000 && fn*math.Pow(x, 1.5) <= 1.4 {
		return 1 - durbinCDF(n, x)
	}

	return 1 - pelzGoodCDF(n, x)
}

// smirnovSF returns P(D+_n >= x) for the one-sided statistic with the
// Birnbaum-Tingey formula.
func smirnovSF(n int, x float64) float64 {
	if x <= 0 {
		return 1
	}

	if x >= 1 {
		return 0
	}

	fn := float64(n)
	lgn, _ := math.Lgamma(fn + 1)
	var sum float64
	for j := 0; j <= int(math.Floor(fn*(1-x))); j++ {
		fj := float64(j)
		a := 1 - x - fj/fn
		if a <= 0 {
			continue
		}

		lgj, _ := math.Lgamma(fj + 1)
		lgnj, _ := math.Lgamma(fn - fj + 1)
		sum += math.Exp(lgn - lgj - lgnj + (fn-fj)*math.Log(a) + (fj-1)*math.Log(x+fj/fn))
	}

	return x * sum
}

// durbinCDF returns P(D_n < x) with Durbin's matrix method in the form of
// Marsaglia, Tsang and Wang. Powers of ten are tracked apart from the matrix.
func durbinCDF(n int, x float64) float64 {
	fn := float64(n)
	k := int(fn*x) + 1
	m := 2*k - 1
	h := float64(k) - fn*x

	hm := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 >= 0 {
				hm[i*m+j] = 1
			}
		}
	}

	for i := 0; i < m; i++ {
		hm[i*m] -= math.Pow(h, float64(i+1))
		hm[(m-1)*m+i] -= math.Pow(h, float64(m-i))
	}

	if 2*h-1 > 0 {
		hm[(m-1)*m] += math.Pow(2*h-1, float64(m))
	}

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			for g := 1; g <= i-j+1; g++ {
				hm[i*m+j] /= float64(g)
			}
		}
	}

	qm, e := matrixPower(hm, m, n)
	s := qm[(k-1)*m+k-1]
	for i := 1; i <= n; i++ {
		s = s * float64(i) / fn
		if s < 1e-140 {
			s *= 1e140
			e -= 140
		}
	}

	return s * math.Pow(10, float64(e))
}

// matrixPower returns a^n for the m by m matrix a as a scaled matrix and its
// power of ten.
func matrixPower(a []float64, m, n int) ([]float64, int) {
	if n == 1 {
		v := make([]float64, len(a))
		copy(v, a)
		return v, 0
	}

	v, e := matrixPower(a, m, n/2)
	b := matrixMultiply(v, v, m)
	e *= 2
	if n%2 == 1 {
		b = matrixMultiply(a, b, m)
	}

	if b[(m/2)*m+m/2] > 1e140 {
		for i := range b {
			b[i] *= 1e-140
		}
		e += 140
	}

	return b, e
}

func matrixMultiply(a, b []float64, m int) []float64 {
	c := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for l := 0; l < m; l++ {
			v := a[i*m+l]
			if v == 0 {
				continue
			}

			for j := 0; j < m; j++ {
				c[i*m+j] += v * b[l*m+j]
			}
		}
	}

	return c
}

// pelzGoodCDF returns the Pelz-Good asymptotic expansion of P(D_n < x).
func pelzGoodCDF(n int, x float64) float64 {
	z := math.Sqrt(float64(n)) * x
	z2 := z * z
	z3 := z2 * z
	z4 := z2 * z2
	z6 := z4 * z2
	pi2 := math.Pi * math.Pi
	pi4 := pi2 * pi2
	pi6 := pi4 * pi2

	qlog := -pi2 / 8 / z2
	if qlog < minLog {
		return 0
	}
	q := math.Exp(qlog)

	k1a, k1b := -z2, pi2/4
	k2a := 6*z6 + 2*z4
	k2b := (2*z4 - 5*z2) * pi2 / 4
	k2c := pi4 * (1 - 2*z2) / 16
	k3a := -30*z6 - 90*z4*z4
	k3b := pi2 * (135*z4 - 96*z6) / 4
	k3c := pi4 * (-60*z2 + 212*z4) / 16
	k3d := pi6 * (5 - 30*z2) / 64

	// Horner scheme over odd m = 2k-1 in powers of q.
	var terms [4]float64
	maxk := int(math.Ceil(16 * z / math.Pi))
	for k := maxk; k > 0; k-- {
		m := float64(2*k - 1)
		m2 := m * m
		m4 := m2 * m2
		m6 := m4 * m2
		qpow := math.Pow(q, float64(8*k))
		coeffs := [4]float64{
			1,
			k1a + k1b*m2,
			k2a + k2b*m2 + k2c*m4,
			k3a + k3b*m2 + k3c*m4 + k3d*m6,
		}
		for i := range terms {
			terms[i] = terms[i]*qpow + coeffs[i]
		}
	}

	sqrt2pi := math.Sqrt(2 * math.Pi)
	divisors := [4]float64{z, 6 * z4, 72 * z6 * z, 6480 * z6 * z4}
	for i := range terms {
		terms[i] *= q * sqrt2pi / divisors[i]
	}

	q = math.Exp(-pi2 / 2 / z2)
	sqrt3z := math.Sqrt(3) * z
	var k2extra, k3extra float64
	for k := maxk; k > 0; k-- {
		fk := float64(k)
		kk := fk * fk
		kpi := math.Pi * fk
		qpow := math.Pow(q, kk)
		k2extra += kk * qpow
		k3extra += (sqrt3z + kpi) * (sqrt3z - kpi) * kk * qpow
	}
	terms[2] += k2extra * pi2 * sqrt2pi / (-36 * z3)
	terms[3] += k3extra * pi2 * sqrt2pi / (216 * z6)

	var cdf float64
	for i := range terms {
		cdf += terms[i] / math.Pow(float64(n), float64(i)/2)
	}

	return cdf
}
