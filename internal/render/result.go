package render

import (
	"fmt"
	"strings"

	"jobmatch/internal/recommender"
)

const (
	// Display clamps for the profile summary and job cards.
	maxSkillChips  = 12
	maxDescription = 140
	ellipsis       = "…"

	// NotDetected is shown when the backend reports zero experience years.
	NotDetected = "Not detected"

	// NoMatches is the whole result body when the response carries no jobs.
	NoMatches = "No matching jobs found. Try describing more of your skills and experience."
)

// Result turns a recommendation into the full terminal fragment: profile
// summary first, then the ranked job cards in the order received. An empty
// job list is a valid outcome and renders a single explanatory line.
func Result(rec *recommender.Recommendation) string {
	var b strings.Builder

	b.WriteString(Summary(rec.Profile))

	if len(rec.Jobs) == 0 {
		b.WriteString(NoMatches + "\n")
		return b.String()
	}

	for _, job := range rec.Jobs {
		b.WriteString("\n")
		b.WriteString(JobCard(job))
	}

	return b.String()
}

// Summary renders the resume profile stats. The first 12 detected skills are
// shown verbatim in source order, with no dedup.
func Summary(p *recommender.Profile) string {
	if p == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Resume profile: %d skills detected, %s of experience, %d words\n",
		len(p.DetectedSkills), Experience(p.ExperienceYears), p.WordCount)

	chips := p.DetectedSkills
	if len(chips) > maxSkillChips {
		chips = chips[:maxSkillChips]
	}
	if len(chips) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(chips, " · "))
	}

	return b.String()
}

// Experience formats experience years; zero means the backend could not
// detect a figure, not zero years.
func Experience(years float64) string {
	if years == 0 {
		return NotDetected
	}
	return fmt.Sprintf("%g years", years)
}

// JobCard renders one ranked job. The rank badge echoes the backend's rank
// and the tier label is purely visual.
func JobCard(job *recommender.JobMatch) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d [%s] %s / %s / %s\n", job.Rank, TierFor(job.MatchScore), job.Title, job.Company, job.Location)
	fmt.Fprintf(&b, "    match %.1f%% · skills matched %.1f%% · %s · %s\n",
		job.MatchScore, job.SkillMatchPct, job.ExperienceLevel, job.SalaryRange)

	if skills := SplitSkills(job.Skills); len(skills) > 0 {
		marks := make([]string, 0, len(skills))
		for _, skill := range skills {
			if SkillMatched(skill, job.MatchedSkills) {
				marks = append(marks, "[x] "+skill)
			} else {
				marks = append(marks, "[ ] "+skill)
			}
		}
		fmt.Fprintf(&b, "    %s\n", strings.Join(marks, "  "))
	}

	if desc := strings.TrimSpace(job.Description); desc != "" {
		fmt.Fprintf(&b, "    %s\n", Truncate(desc, maxDescription))
	}

	return b.String()
}

// Truncate hard-clamps a string to limit runes, appending a single ellipsis
// glyph when anything was cut. Word boundaries are ignored on purpose.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
