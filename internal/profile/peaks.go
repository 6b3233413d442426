package profile

import (
	"fmt"
	"sort"
)

// FindPeaks returns the indices of local maxima in seq that have topographic
// prominence of at least minProminence, thinned so that no two returned
// peaks are closer than minDistance positions. Indices are returned in
// ascending order.
//
// A local maximum is an index i with seq[i] > seq[i-1] and seq[i] >= seq[i+1];
// boundary indices are compared only against their single neighbor. The
// prominence of a candidate is its height above the higher of the two lowest
// points separating it from higher ground on either side (or from the
// sequence edge if no higher value exists on that side).
//
// Thinning is greedy by descending height: the tallest surviving candidate
// is kept and every other candidate within minDistance of it is discarded.
// Candidates of equal height are processed lowest index first, so the result
// is deterministic.
//
// An empty sequence or minDistance < 1 is an error wrapping
// ErrInvalidArgument. No surviving candidates is a valid outcome and yields
// an empty, non-nil slice.
func FindPeaks(seq []float64, minDistance int, minProminence float64) ([]int, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: sequence is empty", ErrInvalidArgument)
	}
	if minDistance < 1 {
		return nil, fmt.Errorf("%w: min distance must be >= 1, got %d", ErrInvalidArgument, minDistance)
	}

	candidates := localMaxima(seq)

	// Prominence filter.
	filtered := candidates[:0]
	for _, i := range candidates {
		if prominence(seq, i) >= minProminence {
			filtered = append(filtered, i)
		}
	}

	// Greedy selection by descending height, lower index first on ties.
	order := make([]int, len(filtered))
	copy(order, filtered)
	sort.SliceStable(order, func(a, b int) bool {
		if seq[order[a]] != seq[order[b]] {
			return seq[order[a]] > seq[order[b]]
		}
		return order[a] < order[b]
	})

	selected := make([]int, 0, len(order))
	for _, i := range order {
		ok := true
		for _, s := range selected {
			if abs(i-s) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			selected = append(selected, i)
		}
	}

	sort.Ints(selected)
	return selected, nil
}

// localMaxima returns candidate peak indices in ascending order. Interior
// indices must rise strictly from the left and not rise to the right, which
// assigns a plateau's peak to its leftmost sample. Boundary indices use the
// same comparison against the one neighbor they have.
func localMaxima(seq []float64) []int {
	n := len(seq)
	if n == 1 {
		return []int{0}
	}

	var peaks []int
	if seq[0] >= seq[1] {
		peaks = append(peaks, 0)
	}
	for i := 1; i < n-1; i++ {
		if seq[i] > seq[i-1] && seq[i] >= seq[i+1] {
			peaks = append(peaks, i)
		}
	}
	if seq[n-1] > seq[n-2] {
		peaks = append(peaks, n-1)
	}
	return peaks
}

// prominence computes the topographic prominence of index i: the drop from
// seq[i] down to the higher of the two key saddles. Each saddle is the
// minimum value between i and the nearest strictly higher sample on that
// side; if no higher sample exists the walk extends to the sequence edge.
func prominence(seq []float64, i int) float64 {
	leftMin := seq[i]
	for j := i - 1; j >= 0; j-- {
		if seq[j] > seq[i] {
			break
		}
		if seq[j] < leftMin {
			leftMin = seq[j]
		}
	}

	rightMin := seq[i]
	for j := i + 1; j < len(seq); j++ {
		if seq[j] > seq[i] {
			break
		}
		if seq[j] < rightMin {
			rightMin = seq[j]
		}
	}

	saddle := leftMin
	if rightMin > saddle {
		saddle = rightMin
	}
	return seq[i] - saddle
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
