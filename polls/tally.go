// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"math"

	"github.com/danielhkuo/pollboard/models"
)

// Tally turns per-index vote counts into results in option order.
// Counts for indexes past the last option are ignored, so the total is
// always the sum of the listed options' votes.
func Tally(options []string, counts map[int]int) ([]models.OptionResult, int) {
	results := make([]models.OptionResult, len(options))
	total := 0
	for i, text := range options {
		results[i] = models.OptionResult{Index: i, Text: text, Votes: counts[i]}
		total += counts[i]
	}

	for i := range results {
		results[i].Percentage = Percentage(results[i].Votes, total)
	}
	return results, total
}

// Percentage is round(votes/total*100), or 0 when nobody has voted
func Percentage(votes, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}
