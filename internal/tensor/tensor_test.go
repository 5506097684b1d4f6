package tensor

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat64(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{0}, 0},
		{Shape{3}, 3},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v): expected %d, got %d", tt.shape, tt.want, got)
		}
	}
}

// Construction Tests

func TestNewValidatesBufferLength(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, Shape{2, 2})
	if !errors.Is(err, ErrInvalidTensor) {
		t.Errorf("expected ErrInvalidTensor, got %v", err)
	}

	tensor, err := New([]float64{1, 2, 3, 4}, Shape{2, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqualShape(t, Shape{2, 2}, tensor.Shape, "New shape")
	if tensor.Rank != 2 {
		t.Errorf("expected rank 2, got %d", tensor.Rank)
	}
}

func TestStack(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	tensor := Stack(vectors)

	assertEqualShape(t, Shape{2, 3}, tensor.Shape, "Stack shape")
	if tensor.Rank != 2 {
		t.Errorf("expected rank 2, got %d", tensor.Rank)
	}
	expected := []float64{1, 2, 3, 4, 5, 6}
	for i, exp := range expected {
		assertEqualFloat64(t, exp, tensor.Data[i], fmt.Sprintf("Stack[%d]", i))
	}
}

func TestStackEmpty(t *testing.T) {
	tensor := Stack(nil)

	assertEqualShape(t, Shape{0}, tensor.Shape, "empty stack shape")
	if tensor.Rank != 0 {
		t.Errorf("expected rank 0, got %d", tensor.Rank)
	}
	if len(tensor.Data) != 0 {
		t.Errorf("expected empty data, got %v", tensor.Data)
	}
}

// Contraction Tests

func TestContractIdentity(t *testing.T) {
	identity := Tensor{Shape: Shape{2, 2}, Data: []float64{1, 0, 0, 1}, Rank: 2}
	other := Tensor{Shape: Shape{2, 2}, Data: []float64{5, 6, 7, 8}, Rank: 2}

	result, err := Contract(identity, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqualShape(t, Shape{2, 2}, result.Shape, "Contract shape")
	expected := []float64{5, 6, 7, 8}
	for i, exp := range expected {
		assertEqualFloat64(t, exp, result.Data[i], fmt.Sprintf("Contract[%d]", i))
	}
}

func TestContractMatMul(t *testing.T) {
	// (2, 3) @ (3, 2) -> (2, 2)
	a := Tensor{Shape: Shape{2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}, Rank: 2}
	b := Tensor{Shape: Shape{3, 2}, Data: []float64{7, 8, 9, 10, 11, 12}, Rank: 2}

	result, err := Contract(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqualShape(t, Shape{2, 2}, result.Shape, "Contract shape")
	expected := []float64{58, 64, 139, 154}
	for i, exp := range expected {
		assertEqualFloat64(t, exp, result.Data[i], fmt.Sprintf("Contract[%d]", i))
	}
}

func TestContractDimensionMismatch(t *testing.T) {
	a := Tensor{Shape: Shape{2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}, Rank: 2}
	b := Tensor{Shape: Shape{2, 2}, Data: []float64{1, 2, 3, 4}, Rank: 2}

	_, err := Contract(a, b)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestContractFallbackProduct(t *testing.T) {
	// Non-rank-2 operand degrades to a truncated elementwise product.
	a := Tensor{Shape: Shape{4}, Data: []float64{1, 2, 3, 4}, Rank: 1}
	b := Tensor{Shape: Shape{2, 1}, Data: []float64{10, 20}, Rank: 2}

	result, err := Contract(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Rank != 1 {
		t.Errorf("expected rank min(1,2)=1, got %d", result.Rank)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected truncation to 2 elements, got %d", len(result.Data))
	}
	assertEqualFloat64(t, 10, result.Data[0], "fallback[0]")
	assertEqualFloat64(t, 40, result.Data[1], "fallback[1]")
}

// TestAndIsContraction pins the known semantic inconsistency: And is named as
// a logical operator but performs matrix multiplication on rank-2 operands,
// not an elementwise conjunction. A true fuzzy AND of an identity matrix with
// [5,6,7,8] would be elementwise min, i.e. [1,0,0,1]; contraction reproduces
// the right operand instead.
func TestAndIsContraction(t *testing.T) {
	identity := Tensor{Shape: Shape{2, 2}, Data: []float64{1, 0, 0, 1}, Rank: 2}
	other := Tensor{Shape: Shape{2, 2}, Data: []float64{5, 6, 7, 8}, Rank: 2}

	result, err := And(identity, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{5, 6, 7, 8} // matmul, NOT elementwise min
	for i, exp := range expected {
		assertEqualFloat64(t, exp, result.Data[i], fmt.Sprintf("And[%d]", i))
	}
}

// Fuzzy Operator Tests

func TestOrCommutative(t *testing.T) {
	a := Tensor{Shape: Shape{4}, Data: []float64{0.1, 0.8, 0.3, 0.5}, Rank: 1}
	b := Tensor{Shape: Shape{4}, Data: []float64{0.6, 0.2, 0.9, 0.4}, Rank: 1}

	ab := Or(a, b)
	ba := Or(b, a)

	for i := range ab.Data {
		assertEqualFloat64(t, ab.Data[i], ba.Data[i], fmt.Sprintf("Or commutativity[%d]", i))
	}
}

func TestOrNormalized(t *testing.T) {
	a := Tensor{Shape: Shape{3}, Data: []float64{0.5, 0.5, 0.5}, Rank: 1}
	b := Tensor{Shape: Shape{3}, Data: []float64{0.1, 0.9, 0.2}, Rank: 1}

	result := Or(a, b)

	var norm float64
	for _, v := range result.Data {
		norm += v * v
	}
	assertEqualFloat64(t, 1, math.Sqrt(norm), "Or output norm")
}

func TestNotInvolution(t *testing.T) {
	a := Tensor{Shape: Shape{4}, Data: []float64{0, 0.25, 0.75, 1}, Rank: 1}

	roundTrip := Not(Not(a))

	for i := range a.Data {
		assertEqualFloat64(t, a.Data[i], roundTrip.Data[i], fmt.Sprintf("Not involution[%d]", i))
	}
}

func TestImpliesLowerBound(t *testing.T) {
	// With unit-normalized high-dimensional operands every component is well
	// below 0.5, so max(1-a, b) is bounded below by 0.5. This is the form the
	// operator sees in practice: premise and conclusion tensors are stacked
	// unit vectors.
	a := make([]float64, 64)
	b := make([]float64, 64)
	for i := range a {
		a[i] = 0.4 + 0.1*math.Sin(float64(i))
		b[i] = 0.4 + 0.1*math.Cos(float64(i))
	}
	normalizeL2(a)
	normalizeL2(b)

	result := Implies(Tensor{Shape: Shape{64}, Data: a, Rank: 1}, Tensor{Shape: Shape{64}, Data: b, Rank: 1})

	for i, v := range result.Data {
		if v < 0.5 {
			t.Errorf("Implies[%d] = %v, expected >= 0.5", i, v)
		}
	}
}

func TestImpliesTruncates(t *testing.T) {
	a := Tensor{Shape: Shape{4}, Data: []float64{0.2, 0.4, 0.6, 0.8}, Rank: 1}
	b := Tensor{Shape: Shape{2}, Data: []float64{0.9, 0.1}, Rank: 1}

	result := Implies(a, b)

	if len(result.Data) != 2 {
		t.Fatalf("expected overlap length 2, got %d", len(result.Data))
	}
	assertEqualFloat64(t, 0.9, result.Data[0], "Implies[0]") // max(0.8, 0.9)
	assertEqualFloat64(t, 0.6, result.Data[1], "Implies[1]") // max(0.6, 0.1)
}

// Similarity Tests

func TestCosineSimilaritySelf(t *testing.T) {
	a := Tensor{Shape: Shape{3}, Data: []float64{1, 2, 3}, Rank: 1}
	assertEqualFloat64(t, 1, CosineSimilarity(a, a), "self-similarity")
}

func TestCosineSimilarityBounds(t *testing.T) {
	a := Tensor{Shape: Shape{2}, Data: []float64{1, 0}, Rank: 1}
	b := Tensor{Shape: Shape{2}, Data: []float64{-1, 0}, Rank: 1}
	c := Tensor{Shape: Shape{2}, Data: []float64{0, 1}, Rank: 1}

	assertEqualFloat64(t, -1, CosineSimilarity(a, b), "opposite vectors")
	assertEqualFloat64(t, 0, CosineSimilarity(a, c), "orthogonal vectors")
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	zero := Tensor{Shape: Shape{3}, Data: []float64{0, 0, 0}, Rank: 1}
	a := Tensor{Shape: Shape{3}, Data: []float64{1, 2, 3}, Rank: 1}

	assertEqualFloat64(t, 0, CosineSimilarity(zero, a), "zero-norm similarity")
	assertEqualFloat64(t, 0, CosineSimilarity(Empty(), a), "empty-tensor similarity")
}

// Mean Tests

func TestMean(t *testing.T) {
	a := Tensor{Shape: Shape{3}, Data: []float64{1, 2, 3}, Rank: 1}
	b := Tensor{Shape: Shape{3}, Data: []float64{3, 4, 5}, Rank: 1}

	result := Mean(a, b)

	expected := []float64{2, 3, 4}
	for i, exp := range expected {
		assertEqualFloat64(t, exp, result.Data[i], fmt.Sprintf("Mean[%d]", i))
	}
}

func TestMeanShorterOperandContributesZero(t *testing.T) {
	a := Tensor{Shape: Shape{3}, Data: []float64{2, 2, 2}, Rank: 1}
	b := Tensor{Shape: Shape{1}, Data: []float64{4}, Rank: 1}

	result := Mean(a, b)

	if len(result.Data) != 3 {
		t.Fatalf("expected length from first tensor, got %d", len(result.Data))
	}
	assertEqualFloat64(t, 3, result.Data[0], "Mean[0]")
	assertEqualFloat64(t, 1, result.Data[1], "Mean[1]")
	assertEqualFloat64(t, 1, result.Data[2], "Mean[2]")
}

func TestMeanEmpty(t *testing.T) {
	result := Mean()
	assertEqualShape(t, Shape{0}, result.Shape, "Mean() shape")
	if result.Rank != 0 || len(result.Data) != 0 {
		t.Errorf("expected canonical empty tensor, got %+v", result)
	}
}

// Immutability Tests

func TestOperationsDoNotMutateOperands(t *testing.T) {
	a := Tensor{Shape: Shape{4}, Data: []float64{0.1, 0.2, 0.3, 0.4}, Rank: 1}
	b := Tensor{Shape: Shape{4}, Data: []float64{0.5, 0.6, 0.7, 0.8}, Rank: 1}
	aCopy := a.Clone()
	bCopy := b.Clone()

	Or(a, b)
	Not(a)
	Implies(a, b)
	if _, err := Contract(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Mean(a, b)

	for i := range aCopy.Data {
		assertEqualFloat64(t, aCopy.Data[i], a.Data[i], fmt.Sprintf("a mutated at %d", i))
		assertEqualFloat64(t, bCopy.Data[i], b.Data[i], fmt.Sprintf("b mutated at %d", i))
	}
}
