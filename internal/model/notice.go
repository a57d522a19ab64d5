// internal/model/notice.go
package model

import "time"

// Notice is a platform announcement. Creation with an attached image goes
// through the multipart path, not the JSON wrapper.
type Notice struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image,omitempty"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateNoticeRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	IsPinned bool   `json:"is_pinned"`
}

type UpdateNoticeRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	IsPinned bool   `json:"is_pinned"`
}
