package profile

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindPeaks_CalibrationProfile(t *testing.T) {
	// Two grid lines: one peak of height 3, one of height 4.
	seq := []float64{0, 1, 3, 1, 0, 1, 4, 1, 0}

	got, err := FindPeaks(seq, 2, 1)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	want := []int{2, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_MonotonicIncreasing(t *testing.T) {
	seq := []float64{1, 2, 3, 4, 5, 6}

	got, err := FindPeaks(seq, 1, 0)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	// Only the last element qualifies, via the boundary rule.
	want := []int{5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_MinDistanceSuppression(t *testing.T) {
	// Three close peaks of heights 5, 9, 6: the tallest wins, its neighbors
	// within distance 4 are suppressed.
	seq := []float64{0, 5, 0, 9, 0, 6, 0}

	got, err := FindPeaks(seq, 4, 0)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	want := []int{3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_DistanceExactlyMinIsKept(t *testing.T) {
	seq := []float64{0, 5, 0, 6, 0}

	// Indices 1 and 3 are exactly 2 apart; minDistance 2 keeps both.
	got, err := FindPeaks(seq, 2, 0)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_ProminenceFilter(t *testing.T) {
	// The bump at index 3 rises only 1 above its higher saddle; the peaks
	// at indices 1 and 7 both have prominence 6.
	seq := []float64{0, 6, 4, 5, 4, 0, 1, 6, 1, 0}

	got, err := FindPeaks(seq, 1, 2)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	for _, p := range got {
		if prominence(seq, p) < 2 {
			t.Errorf("peak %d has prominence %v, below threshold 2", p, prominence(seq, p))
		}
	}

	// Index 3 (prominence 1) must be filtered out; index 1 and 7 survive.
	want := []int{1, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_EqualHeightTieBreak(t *testing.T) {
	// Two equal peaks within suppression range: the lower index is
	// processed first and survives.
	seq := []float64{0, 7, 0, 7, 0}

	got, err := FindPeaks(seq, 3, 0)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	want := []int{1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_NoPeaksIsNotAnError(t *testing.T) {
	seq := []float64{5, 5, 5, 5}

	got, err := FindPeaks(seq, 1, 10)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("peaks: got %v, want empty", got)
	}
}

func TestFindPeaks_SingleElement(t *testing.T) {
	got, err := FindPeaks([]float64{3}, 1, 0)
	if err != nil {
		t.Fatalf("FindPeaks failed: %v", err)
	}

	want := []int{0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("peaks: got %v, want %v", got, want)
	}
}

func TestFindPeaks_InvalidArguments(t *testing.T) {
	tests := []struct {
		name        string
		seq         []float64
		minDistance int
	}{
		{"empty sequence", nil, 1},
		{"zero distance", []float64{1, 2, 1}, 0},
		{"negative distance", []float64{1, 2, 1}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindPeaks(tt.seq, tt.minDistance, 0)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestFindPeaks_MinDistanceProperty(t *testing.T) {
	// A noisy sawtooth with many candidates.
	seq := []float64{1, 3, 2, 4, 1, 5, 2, 6, 1, 4, 3, 7, 2, 5, 1, 8, 2}

	for _, d := range []int{1, 2, 3, 5} {
		got, err := FindPeaks(seq, d, 0)
		if err != nil {
			t.Fatalf("FindPeaks failed for d=%d: %v", d, err)
		}
		for i := 1; i < len(got); i++ {
			if got[i]-got[i-1] < d {
				t.Errorf("d=%d: peaks %d and %d are %d apart", d, got[i-1], got[i], got[i]-got[i-1])
			}
		}
	}
}

func TestProminence_GlobalMaximumDropsToEdges(t *testing.T) {
	seq := []float64{2, 1, 9, 3, 4}

	// No higher sample on either side: the walk reaches both edges and the
	// key saddle is the higher of the two side minima (1 vs 3).
	if got := prominence(seq, 2); got != 6 {
		t.Errorf("prominence: got %v, want 6", got)
	}
}
