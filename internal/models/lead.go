package models

// LeadRequest is a contact-form submission forwarded to the lead collector.
type LeadRequest struct {
	Lang    string `json:"lang"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Company string `json:"company,omitempty"`
	Website string `json:"website,omitempty"`
	Message string `json:"message"`
	Page    string `json:"page"`
	Source  string `json:"source"`
}

// LeadResponse acknowledges an accepted submission.
type LeadResponse struct {
	OK bool `json:"ok"`
}
