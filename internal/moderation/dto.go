package moderation

// ReportRequest carries the reason a user is being flagged.
type ReportRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type BlockListResponse struct {
	Count  int     `json:"count"`
	Blocks []Block `json:"blocks"`
}
