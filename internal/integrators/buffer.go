package integrators

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Buffer stores a trajectory as a dense dim x (steps+1) matrix, one
// column per integration step. Column 0 holds the initial values.
type Buffer struct {
	dim  int
	data *mat.Dense
}

// NewBuffer allocates storage for an integration over steps steps of a
// dim-dimensional system. Non-positive step counts still allocate the
// initial column.
func NewBuffer(dim, steps int) *Buffer {
	if steps < 0 {
		steps = 0
	}
	return &Buffer{
		dim:  dim,
		data: mat.NewDense(dim, steps+1, nil),
	}
}

// Dim returns the state dimension.
func (b *Buffer) Dim() int { return b.dim }

// Steps returns the number of integration steps the buffer covers.
func (b *Buffer) Steps() int {
	_, c := b.data.Dims()
	return c - 1
}

// Cols returns the number of stored columns, Steps()+1.
func (b *Buffer) Cols() int {
	_, c := b.data.Dims()
	return c
}

// SetState writes x into column i. It returns ErrDimensionMismatch when
// the state length differs from the buffer dimension and panics when i
// is out of range.
func (b *Buffer) SetState(i int, x State) error {
	if len(x) != b.dim {
		return fmt.Errorf("%w: got %d values for dimension %d", ErrDimensionMismatch, len(x), b.dim)
	}
	b.data.SetCol(i, x)
	return nil
}

// State returns a copy of column i.
func (b *Buffer) State(i int) State {
	out := make(State, b.dim)
	mat.Col(out, i, b.data)
	return out
}

// InitialValues returns a copy of column 0.
func (b *Buffer) InitialValues() State {
	return b.State(0)
}

// Row returns a copy of component i across every stored step.
func (b *Buffer) Row(i int) []float64 {
	return mat.Row(nil, i, b.data)
}

// At returns the value of component row at step col.
func (b *Buffer) At(row, col int) float64 {
	return b.data.At(row, col)
}

// Set overwrites the value of component row at step col.
func (b *Buffer) Set(row, col int, v float64) {
	b.data.Set(row, col, v)
}
