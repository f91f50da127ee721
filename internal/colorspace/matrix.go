package colorspace

import (
	"fmt"
	"math"
)

// Multiply returns the matrix product a×b. Both operands are row-major and
// must be rectangular; the column count of a must equal the row count of b.
func Multiply(a, b [][]float64) ([][]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("multiply: empty matrix")
	}
	inner := len(b)
	cols := len(b[0])
	for i, row := range a {
		if len(row) != inner {
			return nil, fmt.Errorf("multiply: row %d of left operand has %d columns, want %d", i, len(row), inner)
		}
	}
	for i, row := range b {
		if len(row) != cols {
			return nil, fmt.Errorf("multiply: row %d of right operand has %d columns, want %d", i, len(row), cols)
		}
	}

	m := make([][]float64, len(a))
	for r := range a {
		m[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			var sum float64
			for i := 0; i < inner; i++ {
				sum += a[r][i] * b[i][c]
			}
			m[r][c] = sum
		}
	}
	return m, nil
}

// transform applies a 3×3 matrix to the column vector (x, y, z).
func transform(m [][]float64, x, y, z float64) (float64, float64, float64) {
	v, err := Multiply(m, [][]float64{{x}, {y}, {z}})
	if err != nil {
		// Every matrix in this package is a 3×3 literal.
		panic(err)
	}
	return v[0][0], v[1][0], v[2][0]
}

// Round rounds v half away from zero to the given number of decimal places.
// A relative nudge of one ulp absorbs binary representation error, so
// Round(1.005, 2) is 1.01.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p*(1+epsilon)) / p
}

const epsilon = 2.220446049250313e-16
