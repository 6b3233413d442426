package profile

import (
	"errors"
	"math"
	"testing"
)

func TestSmooth_KernelOneIsIdentity(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	out, err := Smooth(in, 1)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("length: got %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("element %d: got %v, want %v", i, out[i], in[i])
		}
	}

	// Must be a copy, not the caller's slice.
	out[0] = 99
	if in[0] == 99 {
		t.Error("Smooth returned the input slice instead of a copy")
	}
}

func TestSmooth_InteriorAverage(t *testing.T) {
	in := []float64{0, 3, 6, 9, 12}

	out, err := Smooth(in, 3)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	// Interior element 2 averages {3, 6, 9}.
	if out[2] != 6 {
		t.Errorf("element 2: got %v, want 6", out[2])
	}
}

func TestSmooth_TruncatedBoundaries(t *testing.T) {
	in := []float64{10, 0, 0, 0, 10}

	out, err := Smooth(in, 3)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	// Boundary windows shrink to the two available elements; no zero padding.
	if out[0] != 5 {
		t.Errorf("element 0: got %v, want 5", out[0])
	}
	if out[4] != 5 {
		t.Errorf("element 4: got %v, want 5", out[4])
	}
}

func TestSmooth_KernelLargerThanSequence(t *testing.T) {
	in := []float64{2, 4, 6}

	out, err := Smooth(in, 9)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	// Every window truncates to the whole sequence.
	for i, v := range out {
		if math.Abs(v-4) > 1e-9 {
			t.Errorf("element %d: got %v, want 4", i, v)
		}
	}
}

func TestSmooth_LengthPreserved(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 17} {
		in := make([]float64, n)
		out, err := Smooth(in, 5)
		if err != nil {
			t.Fatalf("Smooth failed for length %d: %v", n, err)
		}
		if len(out) != n {
			t.Errorf("length %d: got %d", n, len(out))
		}
	}
}

func TestSmooth_InvalidKernel(t *testing.T) {
	tests := []struct {
		name       string
		kernelSize int
	}{
		{"even", 4},
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Smooth([]float64{1, 2, 3}, tt.kernelSize)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
			}
		})
	}
}
