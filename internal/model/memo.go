// internal/model/memo.go
package model

import "github.com/google/uuid"

// MemoProgress is a memorization deck ("암기") grouping flash cards.
type MemoProgress struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Day            *int     `json:"day,omitempty"`
	SubjectID      *int64   `json:"subject,omitempty"`
	SubjectDetails *Subject `json:"subject_details,omitempty"`
	Sequence       *int     `json:"sequence,omitempty"`
}

// MemoProblemData is one flash card. DraftID is a transient client-side key
// for cards composed locally before submission; the backend never sees it.
type MemoProblemData struct {
	ID             int64  `json:"id"`
	MemoProgressID int64  `json:"memo_progress"`
	Front          string `json:"front"`
	Back           string `json:"back"`
	Sequence       *int   `json:"sequence,omitempty"`

	DraftID uuid.UUID `json:"-"`
}

// NewDraftCard keys a locally composed card so the UI/CLI can track it until
// the backend assigns a real ID.
func NewDraftCard(memoProgressID int64, front, back string) MemoProblemData {
	return MemoProblemData{
		MemoProgressID: memoProgressID,
		Front:          front,
		Back:           back,
		DraftID:        uuid.New(),
	}
}

type CreateMemoProgressRequest struct {
	Name      string `json:"name" validate:"required"`
	Day       *int   `json:"day,omitempty"`
	SubjectID *int64 `json:"subject,omitempty"`
	Sequence  *int   `json:"sequence,omitempty"`
}

type CreateMemoProblemRequest struct {
	MemoProgressID int64  `json:"memo_progress" validate:"required"`
	Front          string `json:"front" validate:"required"`
	Back           string `json:"back" validate:"required"`
	Sequence       *int   `json:"sequence,omitempty"`
}
