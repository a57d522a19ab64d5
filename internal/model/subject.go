// internal/model/subject.go
package model

// Subject is a course subject (e.g. 해부학). Referenced by problem and memo
// progresses; bulk import resolves subject names against the fetched list.
type Subject struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
}

// PrepareMajor is the major a student is preparing for; only used as a
// nested detail on users.
type PrepareMajor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateSubjectRequest struct {
	Name     string `json:"name" validate:"required"`
	Sequence int    `json:"sequence"`
}

type UpdateSubjectRequest struct {
	Name     string `json:"name" validate:"required"`
	Sequence int    `json:"sequence"`
}
