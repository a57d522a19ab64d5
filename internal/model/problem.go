// internal/model/problem.go
package model

// ProblemManagement is one problem in the bank. ProgressDetails is the
// nested detail object some endpoints embed; it is read-only.
type ProblemManagement struct {
	ID              int64            `json:"id"`
	ProgressID      int64            `json:"progress"`
	ProgressDetails *ProblemProgress `json:"progress_details,omitempty"`
	Content         string           `json:"problem"`
	Answer          int              `json:"answer"`
	Solution        string           `json:"solution,omitempty"`
	ExamYear        *int             `json:"exam_year,omitempty"`
	Sequence        *int             `json:"sequence,omitempty"`
	ImageURL        string           `json:"image,omitempty"`
}

// ProblemSelect is one choice row of a problem. Choices are bulk-created in
// a second call after their problems, correlated by array position.
type ProblemSelect struct {
	ID        int64  `json:"id"`
	ProblemID int64  `json:"problem"`
	Sequence  int    `json:"sequence"`
	Content   string `json:"content"`
}

type CreateProblemRequest struct {
	ProgressID int64  `json:"progress" validate:"required"`
	Content    string `json:"problem" validate:"required"`
	Answer     int    `json:"answer" validate:"required"`
	Solution   string `json:"solution,omitempty"`
	ExamYear   *int   `json:"exam_year,omitempty"`
	Sequence   *int   `json:"sequence,omitempty"`
}

type CreateProblemSelectRequest struct {
	ProblemID int64  `json:"problem" validate:"required"`
	Sequence  int    `json:"sequence" validate:"required"`
	Content   string `json:"content" validate:"required"`
}
