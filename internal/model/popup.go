// internal/model/popup.go
package model

// Popup is a banner shown on the student app. Date fields stay as the
// backend's "YYYY-MM-DD" strings; the client does not interpret them.
type Popup struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image,omitempty"`
	LinkURL   string `json:"link_url,omitempty"`
	IsActive  bool   `json:"is_active"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type CreatePopupRequest struct {
	Title     string `json:"title" validate:"required"`
	LinkURL   string `json:"link_url,omitempty"`
	IsActive  bool   `json:"is_active"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
