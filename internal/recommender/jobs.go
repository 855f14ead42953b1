package recommender

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// JobRecord is one row of the catalog listing. The backend serves rows as
// loose attribute bags; fields absent from a row decode to empty strings so
// the table renderer never prints a literal null.
type JobRecord struct {
	JobID           string `mapstructure:"job_id"`
	Title           string `mapstructure:"title"`
	Company         string `mapstructure:"company"`
	Location        string `mapstructure:"location"`
	ExperienceLevel string `mapstructure:"experience_level"`
	SalaryRange     string `mapstructure:"salary_range"`
	Skills          string `mapstructure:"skills"`
}

// ListJobs fetches the full, unranked job set in the order the backend
// serves it.
func (c *Client) ListJobs() ([]JobRecord, error) {
	var rows []map[string]any
	if err := c.getJSON(c.APIURL+jobsPath, &rows); err != nil {
		return nil, err
	}

	return decodeJobRecords(rows)
}

func decodeJobRecords(rows []map[string]any) ([]JobRecord, error) {
	records := make([]JobRecord, 0, len(rows))
	for _, row := range rows {
		var record JobRecord
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			// Numeric job ids arrive as JSON numbers; render them as text.
			WeaklyTypedInput: true,
			Result:           &record,
		})
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(row); err != nil {
			return nil, fmt.Errorf("decode job record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}
