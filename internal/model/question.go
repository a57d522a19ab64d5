// internal/model/question.go
package model

import "time"

// Question is a student Q&A entry; staff attach an answer via PATCH.
type Question struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AnswerQuestionRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// Inquiry is a 1:1 support inquiry; same answer flow as questions.
type Inquiry struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user"`
	Category  string     `json:"category"`
	Content   string     `json:"content"`
	Reply     *string    `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ReplyInquiryRequest struct {
	Reply string `json:"reply" validate:"required"`
}
