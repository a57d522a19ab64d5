// internal/model/user.go
package model

import "time"

// User is a student account. Owned by the backend; the client never mutates
// the ID.
type User struct {
	ID                  int64         `json:"id"`
	Email               string        `json:"email"`
	Name                string        `json:"name"`
	Nickname            string        `json:"nickname"`
	PrepareMajorID      *int64        `json:"prepare_major,omitempty"`
	PrepareMajorDetails *PrepareMajor `json:"prepare_major_details,omitempty"`
	IsActive            bool          `json:"is_active"`
	CreatedAt           time.Time     `json:"created_at"`
}

type UpdateUserRequest struct {
	Name         string `json:"name" validate:"required"`
	Nickname     string `json:"nickname" validate:"required"`
	PrepareMajor *int64 `json:"prepare_major,omitempty"`
	IsActive     bool   `json:"is_active"`
}
