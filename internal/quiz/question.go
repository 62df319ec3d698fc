package quiz

import "fmt"

// OptionCount is the fixed number of answer choices per question.
const OptionCount = 4

// Unanswered marks a question position with no recorded choice.
const Unanswered = -1

// Question is a single multiple-choice quiz item. The option order is
// meaningful: answers are recorded as indexes into Options.
type Question struct {
	Prompt       string              `json:"prompt"`
	Options      [OptionCount]string `json:"options"`
	CorrectIndex int                 `json:"correct_index"`
}

// Validate checks the question invariants (non-empty prompt and options,
// correct index in range). Banks are validated once at load time.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question has empty prompt")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return fmt.Errorf("question %q: correct index %d out of range", q.Prompt, q.CorrectIndex)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %q: option %d is empty", q.Prompt, i)
		}
	}
	return nil
}
