package reviewapi

// SubmitResult is the success body of POST /api/review.
type SubmitResult struct {
	ReportID      string `json:"report_id" validate:"required"`
	Message       string `json:"message,omitempty"`
	ReviewSummary string `json:"review_summary,omitempty"`
}

// ReportData is the success body of GET /api/report/{id}.
type ReportData struct {
	ID          string `json:"id,omitempty"`
	Filename    string `json:"filename"`
	SubmittedAt string `json:"submitted_at,omitempty"`
	RawCode     string `json:"raw_code"`
	Review      Review `json:"review"`
}

// Review is the analysis produced by the service. Every field may be
// missing; renderers supply fallbacks.
type Review struct {
	ReadabilityScore       *float64     `json:"readability_score,omitempty"`
	ModularityScore        *float64     `json:"modularity_score,omitempty"`
	ReviewSummary          string       `json:"review_summary,omitempty"`
	BestPracticesAdherence string       `json:"best_practices_adherence,omitempty"`
	Suggestions            []Suggestion `json:"suggestions,omitempty"`
	PotentialBugs          []string     `json:"potential_bugs,omitempty"`
}

type Suggestion struct {
	Area        string  `json:"area"`
	Detail      string  `json:"detail"`
	ExampleCode *string `json:"example_code,omitempty"`
}

// HasExample reports whether the suggestion carries a non-empty snippet.
func (s Suggestion) HasExample() bool {
	return s.ExampleCode != nil && *s.ExampleCode != ""
}

// reportBody is the wire form of ReportData. A report without a review
// object is rejected rather than rendered from fallbacks.
type reportBody struct {
	ReportData
	Review *Review `json:"review" validate:"required"`
}

type errorBody struct {
	Error string `json:"error"`
}
