package profile

import "errors"

// ErrInvalidArgument is wrapped by all errors reporting malformed parameters
// (bad kernel sizes, non-positive peak distances, empty required input).
// Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Grid is a row-major 2-D array of brightness samples. Grid[y][x] is the
// intensity at column x of row y. Rows are assumed to be equal length;
// grids produced by the imaging package always are.
type Grid [][]float64

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// HorizontalProjection reduces the grid to one value per row: element i is
// the sum of all intensities in row i. An empty grid yields an empty
// sequence, not an error.
func HorizontalProjection(g Grid) []float64 {
	out := make([]float64, len(g))
	for y, row := range g {
		var sum float64
		for _, v := range row {
			sum += v
		}
		out[y] = sum
	}
	return out
}

// VerticalProjection reduces the grid to one value per column: element j is
// the sum of all intensities in column j. An empty grid yields an empty
// sequence, not an error.
func VerticalProjection(g Grid) []float64 {
	out := make([]float64, g.Cols())
	for _, row := range g {
		for x := 0; x < len(row) && x < len(out); x++ {
			out[x] += row[x]
		}
	}
	return out
}
