package matching

// CandidateListResponse wraps the ranked list for the API.
type CandidateListResponse struct {
	Count      int          `json:"count"`
	Candidates []*Candidate `json:"candidates"`
}
