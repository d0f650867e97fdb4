package usecase

import (
	"fmt"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
)

// pickWeighted chooses one candidate with probability proportional to its
// weight: a cumulative prefix sum over the id-ordered candidates and a
// uniform draw in [0, totalWeight). The draw function is injected so
// selection is reproducible under test. Callers must not pass an empty
// slice; the empty eligibility result is handled before selection.
func pickWeighted(candidates []port.Candidate, draw func(n int64) int64) (int64, error) {
	var total int64
	for _, c := range candidates {
		if c.Weight < domain.MinWeight || c.Weight > domain.MaxWeight {
			return 0, fmt.Errorf("banner %d weight %d: %w", c.BannerID, c.Weight, port.ErrInvalidArgument)
		}
		total += int64(c.Weight)
	}

	point := draw(total)
	var cumulative int64
	for _, c := range candidates {
		cumulative += int64(c.Weight)
		if point < cumulative {
			return c.BannerID, nil
		}
	}

	// Unreachable for a draw in [0, total); kept as a guard against a
	// misbehaving injected source.
	return candidates[len(candidates)-1].BannerID, nil
}
