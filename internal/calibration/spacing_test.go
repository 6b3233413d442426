package calibration

import "testing"

func TestMeasureSpacing_UniformGrid(t *testing.T) {
	stats := MeasureSpacing([]int{10, 40, 70, 100})

	if stats == nil {
		t.Fatal("MeasureSpacing returned nil")
	}
	if stats.Gaps != 3 {
		t.Errorf("Gaps: got %d, want 3", stats.Gaps)
	}
	if stats.MeanGap != 30 {
		t.Errorf("MeanGap: got %v, want 30", stats.MeanGap)
	}
	if stats.MedianGap != 30 {
		t.Errorf("MedianGap: got %v, want 30", stats.MedianGap)
	}
	if stats.StdDev != 0 {
		t.Errorf("StdDev: got %v, want 0", stats.StdDev)
	}
	if !stats.Uniform {
		t.Error("evenly spaced lines should be uniform")
	}
}

func TestMeasureSpacing_SkewedGrid(t *testing.T) {
	// Gaps of 10 and 30: heavily uneven.
	stats := MeasureSpacing([]int{0, 10, 40})

	if stats == nil {
		t.Fatal("MeasureSpacing returned nil")
	}
	if stats.MeanGap != 20 {
		t.Errorf("MeanGap: got %v, want 20", stats.MeanGap)
	}
	if stats.MedianGap != 20 {
		t.Errorf("MedianGap: got %v, want 20", stats.MedianGap)
	}
	if stats.StdDev != 10 {
		t.Errorf("StdDev: got %v, want 10", stats.StdDev)
	}
	if stats.Uniform {
		t.Error("uneven spacing should not be uniform")
	}
}

func TestMeasureSpacing_EvenGapCount(t *testing.T) {
	// Gaps 10, 20, 20, 30: median of an even count averages the middle two.
	stats := MeasureSpacing([]int{0, 10, 30, 50, 80})

	if stats.MedianGap != 20 {
		t.Errorf("MedianGap: got %v, want 20", stats.MedianGap)
	}
}

func TestMeasureSpacing_TooFewPositions(t *testing.T) {
	if stats := MeasureSpacing(nil); stats != nil {
		t.Errorf("no positions: got %+v, want nil", stats)
	}
	if stats := MeasureSpacing([]int{42}); stats != nil {
		t.Errorf("single position: got %+v, want nil", stats)
	}
}
