package api

// SubmitAlertRequest is the body of POST /api/v1/alerts.
type SubmitAlertRequest struct {
	// AlertType selects the processing chain.
	AlertType string `json:"alert_type"`
	// AlertData is the arbitrary alert payload passed to agents.
	AlertData map[string]any `json:"alert_data"`
	// Runbook is an optional runbook URL; folded into the alert data.
	Runbook string `json:"runbook,omitempty"`
	// AlertID is an optional client-supplied identifier. Generated when empty.
	AlertID string `json:"alert_id,omitempty"`
}

// listSessionsQuery holds the query parameters of GET /api/v1/sessions.
type listSessionsQuery struct {
	Status    string `query:"status"`
	AlertType string `query:"alert_type"`
	ChainID   string `query:"chain_id"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}
