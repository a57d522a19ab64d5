// internal/model/progress.go
package model

// Difficulty values accepted by the backend. Spreadsheet imports map the
// Korean labels 기본/심화 onto these; anything else is omitted from the
// payload rather than defaulted.
const (
	DifficultyBasic    = "basic"
	DifficultyAdvanced = "advanced"
)

// ProblemProgress is a study unit ("진도") inside a subject; problems hang
// off a progress.
type ProblemProgress struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Day            int      `json:"day"`
	Difficulty     string   `json:"difficulty,omitempty"`
	SubjectID      *int64   `json:"subject,omitempty"`
	SubjectDetails *Subject `json:"subject_details,omitempty"`
	Sequence       *int     `json:"sequence,omitempty"`
}

type CreateProgressRequest struct {
	Name       string `json:"name" validate:"required"`
	Day        int    `json:"day" validate:"required"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=basic advanced"`
	SubjectID  *int64 `json:"subject,omitempty"`
	Sequence   *int   `json:"sequence,omitempty"`
}

type UpdateProgressRequest struct {
	Name       string `json:"name" validate:"required"`
	Day        int    `json:"day" validate:"required"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=basic advanced"`
	SubjectID  *int64 `json:"subject,omitempty"`
	Sequence   *int   `json:"sequence,omitempty"`
}
