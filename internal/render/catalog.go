package render

import (
	"strings"
	"text/tabwriter"

	"jobmatch/internal/recommender"
)

// catalogColumns is the fixed column order of the jobs table.
var catalogColumns = []string{"job_id", "title", "company", "location", "experience_level", "salary_range", "skills"}

// Catalog renders the full job set as a table, one row per record in fetch
// order. No filtering or sorting happens here; absent attributes were
// already coalesced to empty strings during decoding.
func Catalog(records []recommender.JobRecord) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	write := func(cells []string) {
		w.Write([]byte(strings.Join(cells, "\t") + "\n"))
	}

	write(catalogColumns)
	for _, r := range records {
		write([]string{r.JobID, r.Title, r.Company, r.Location, r.ExperienceLevel, r.SalaryRange, r.Skills})
	}
	w.Flush()

	return b.String()
}
