package recommender

// Profile is the backend's quick summary of the submitted resume.
type Profile struct {
	DetectedSkills  []string `json:"detected_skills"`
	ExperienceYears float64  `json:"experience_years"`
	WordCount       int      `json:"word_count"`
}

// JobMatch is one ranked entry of a recommendation. Rank and scores are
// computed by the backend and passed through untouched.
type JobMatch struct {
	Rank            int      `json:"rank"`
	JobID           int      `json:"job_id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Skills          string   `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryRange     string   `json:"salary_range"`
	MatchScore      float64  `json:"match_score"`
	MatchedSkills   []string `json:"matched_skills"`
	SkillMatchPct   float64  `json:"skill_match_pct"`
}

// Recommendation is the response of both submission endpoints.
type Recommendation struct {
	InputType  string      `json:"input_type"`
	Profile    *Profile    `json:"profile"`
	Jobs       []*JobMatch `json:"jobs"`
	ResumeText string      `json:"resume_text"`
}

// Health is the backend readiness report.
type Health struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
