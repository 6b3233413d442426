package profile

import "fmt"

// Smooth applies a centered moving average with the given odd kernel size
// and returns a sequence of the same length.
//
// Boundary elements are averaged over the truncated window that fits inside
// the sequence. No padding is assumed, so the ends are not dragged toward
// zero and no artificial boundary peaks appear.
//
// kernelSize must be odd and >= 1; kernelSize 1 returns a copy of the input
// unchanged.
func Smooth(seq []float64, kernelSize int) ([]float64, error) {
	if kernelSize < 1 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size must be odd and >= 1, got %d", ErrInvalidArgument, kernelSize)
	}

	out := make([]float64, len(seq))
	if kernelSize == 1 {
		copy(out, seq)
		return out, nil
	}

	half := kernelSize / 2
	for i := range seq {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(seq)-1 {
			hi = len(seq) - 1
		}

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += seq[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out, nil
}
