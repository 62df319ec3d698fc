package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionSet is a teacher-authored question collection for one
// branch/subject pair. A non-empty set is startable as a quiz bank.
type QuestionSet struct {
	ID        uuid.UUID     `json:"id"`
	Branch    string        `json:"branch"`
	Subject   string        `json:"subject"`
	AuthorID  uuid.UUID     `json:"author_id"`
	Questions []SetQuestion `json:"questions"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SetQuestion is one editable question row inside a set.
type SetQuestion struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	OrderNum     int      `json:"order_num"`
}

// SaveQuestionSetRequest replaces a set's questions wholesale, matching
// the editor's save-all model.
type SaveQuestionSetRequest struct {
	Questions []SetQuestionRequest `json:"questions" binding:"required,dive"`
}

// SetQuestionRequest is the payload for one question in the editor.
type SetQuestionRequest struct {
	Prompt       string   `json:"prompt" binding:"required,min=1,max=2000"`
	Options      []string `json:"options" binding:"required,len=4,dive,required,max=500"`
	CorrectIndex int      `json:"correct_index" binding:"min=0,max=3"`
}
