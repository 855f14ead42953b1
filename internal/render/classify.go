package render

import "strings"

// Tier is the presentational classification of a match score. It only
// affects how a job is labelled, never how the list is ordered.
type Tier string

const (
	TierHigh Tier = "high"
	TierMed  Tier = "med"
	TierLow  Tier = "low"
)

const (
	highThreshold = 70
	medThreshold  = 50
)

func TierFor(score float64) Tier {
	switch {
	case score >= highThreshold:
		return TierHigh
	case score >= medThreshold:
		return TierMed
	default:
		return TierLow
	}
}

// SplitSkills parses a comma-joined skill string into an ordered list,
// trimming whitespace per entry and preserving the original casing.
func SplitSkills(skills string) []string {
	if strings.TrimSpace(skills) == "" {
		return nil
	}

	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// SkillMatched reports whether a displayed skill equals any matched skill,
// ignoring case. The order of matched does not affect the outcome.
func SkillMatched(skill string, matched []string) bool {
	for _, m := range matched {
		if strings.EqualFold(skill, strings.TrimSpace(m)) {
			return true
		}
	}
	return false
}
