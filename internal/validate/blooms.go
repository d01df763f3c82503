package validate

import (
	"math"

	"github.com/meera/courseforge/internal/coursetree"
)

const (
	// minUniqueLevels is the minimum distinct Bloom's levels a course
	// must exercise to count as cognitively diverse.
	minUniqueLevels = 2

	// dominanceThreshold flags a single level holding more than this
	// fraction of levelled activities.
	dominanceThreshold = 0.80
)

// BloomDiversityValidator checks the spread of Bloom's-taxonomy levels
// across a course's activities. Activities with no level set are
// excluded from the distribution.
type BloomDiversityValidator struct{}

func NewBloomDiversityValidator() *BloomDiversityValidator { return &BloomDiversityValidator{} }

func (v *BloomDiversityValidator) Name() string { return "bloom_diversity" }

func (v *BloomDiversityValidator) Validate(c *coursetree.Course) *Result {
	r := NewResult()

	counts := map[coursetree.BloomLevel]int{}
	total := 0
	for _, a := range coursetree.Flatten(c) {
		if a.Bloom.Order() < 0 {
			continue
		}
		counts[a.Bloom]++
		total++
	}

	if total == 0 {
		r.Suggest("add activities with Bloom's levels to enable diversity analysis")
		r.Metrics["unique_levels"] = 0
		r.Metrics["total_activities"] = 0
		r.Metrics["distribution"] = map[string]float64{}
		r.Metrics["dominant_level"] = nil
		return r
	}

	// Dominant level; ties break toward the lower taxonomy level by
	// iterating in taxonomy order with a strict comparison.
	var dominant coursetree.BloomLevel
	maxCount := 0
	for _, l := range coursetree.AllBloomLevels() {
		if counts[l] > maxCount {
			maxCount = counts[l]
			dominant = l
		}
	}

	if len(counts) < minUniqueLevels {
		r.Error("Only %d Bloom's level(s) used (minimum %d for diverse learning)",
			len(counts), minUniqueLevels)
	}

	frac := float64(maxCount) / float64(total)
	if frac > dominanceThreshold {
		r.Warn("Bloom's level %q dominates with %d%% of activities (%d/%d)",
			dominant, int(math.Round(frac*100)), maxCount, total)
	}

	hasHigherOrder := false
	for l := range counts {
		if l.HigherOrder() {
			hasHigherOrder = true
			break
		}
	}
	if !hasHigherOrder {
		r.Suggest("add higher-order-thinking activities (analyze, evaluate, create)")
	}

	distribution := map[string]float64{}
	for l, n := range counts {
		distribution[string(l)] = round2(float64(n) / float64(total))
	}

	r.Metrics["unique_levels"] = len(counts)
	r.Metrics["total_activities"] = total
	r.Metrics["distribution"] = distribution
	r.Metrics["dominant_level"] = string(dominant)
	return r
}
