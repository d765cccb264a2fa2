package db

import (
	"encoding/json"
	"fmt"
	"livequiz/internal/questions"
)

// ListQuestions returns the question bank, oldest first.
func (d *DB) ListQuestions() ([]questions.Question, error) {
	rows, err := d.conn.Query(`
		SELECT id, text, options, correct_answer, time_limit
		FROM questions
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var list []questions.Question
	for rows.Next() {
		var q questions.Question
		var options []byte
		if err := rows.Scan(&q.ID, &q.Text, &options, &q.CorrectAnswer, &q.TimeLimit); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("decoding options for question %s: %w", q.ID, err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

func (d *DB) AddQuestion(q questions.Question) (string, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return "", fmt.Errorf("encoding options: %w", err)
	}
	var id string
	err = d.conn.QueryRow(`
		INSERT INTO questions (text, options, correct_answer, time_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Text, options, q.CorrectAnswer, q.TimeLimit).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("adding question: %w", err)
	}
	return id, nil
}

func (d *DB) DeleteQuestion(id string) error {
	_, err := d.conn.Exec(`DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	return nil
}
