package tensor

import (
	"errors"
	"fmt"
)

// Tensor operation errors.
var (
	// ErrDimensionMismatch is returned when two rank-2 tensors cannot be
	// contracted because their inner dimensions differ.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrInvalidTensor is returned when a tensor is malformed for the
	// requested operation (e.g. buffer shorter than its declared shape).
	ErrInvalidTensor = errors.New("tensor: invalid tensor")
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements implied by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Tensor is a flat, row-major numeric buffer tagged with a shape and rank.
//
// Tensors are value types: no operation in this package mutates its operands,
// every operation returns a fresh tensor. The data buffer is NOT required to
// match the shape's element count — truncating operations (see Contract's
// fallback path and rule application in the reasoner) legitimately produce
// tensors whose buffer is shorter than the declared shape. Operations over
// two tensors work on the overlapping prefix of the two buffers.
type Tensor struct {
	Shape Shape
	Data  []float64
	Rank  int
}

// New creates a tensor from a data buffer and shape, validating that the
// buffer length matches the shape's element count and all dimensions are
// positive. Use composite literals directly for the (legal) mismatched case.
func New(data []float64, shape Shape) (Tensor, error) {
	for i, dim := range shape {
		if dim < 0 {
			return Tensor{}, fmt.Errorf("%w: negative dimension %d at index %d", ErrInvalidTensor, dim, i)
		}
	}
	if len(data) != shape.NumElements() {
		return Tensor{}, fmt.Errorf("%w: buffer length %d does not match shape %v (%d elements)",
			ErrInvalidTensor, len(data), shape, shape.NumElements())
	}
	return Tensor{Shape: shape.Clone(), Data: data, Rank: len(shape)}, nil
}

// Empty returns the canonical empty tensor: shape [0], no data, rank 0.
func Empty() Tensor {
	return Tensor{Shape: Shape{0}, Data: []float64{}, Rank: 0}
}

// Stack stacks N equal-length vectors into a rank-2 tensor of shape [N, D]
// by concatenating them row-major. Stacking zero vectors yields Empty().
func Stack(vectors [][]float64) Tensor {
	if len(vectors) == 0 {
		return Empty()
	}
	dim := len(vectors[0])
	data := make([]float64, 0, len(vectors)*dim)
	for _, v := range vectors {
		data = append(data, v...)
	}
	return Tensor{Shape: Shape{len(vectors), dim}, Data: data, Rank: 2}
}

// Clone returns a deep copy of the tensor.
func (t Tensor) Clone() Tensor {
	data := make([]float64, len(t.Data))
	copy(data, t.Data)
	return Tensor{Shape: t.Shape.Clone(), Data: data, Rank: t.Rank}
}

// IsMatrix reports whether the tensor is a well-formed rank-2 matrix whose
// buffer covers its declared shape.
func (t Tensor) IsMatrix() bool {
	return t.Rank == 2 && len(t.Shape) == 2 && len(t.Data) >= t.Shape.NumElements()
}
