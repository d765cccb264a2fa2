package questions

import "fmt"

// OptionCount is the fixed number of answer choices per question.
const OptionCount = 4

type Question struct {
	ID            string   `json:"id,omitempty"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"time"`
}

// Validate checks that a question is playable before it enters a deck.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question needs exactly %d options, got %d", OptionCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
		return fmt.Errorf("correct answer index %d out of range", q.CorrectAnswer)
	}
	if q.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %d", q.TimeLimit)
	}
	return nil
}
