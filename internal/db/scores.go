package db

import (
	"fmt"
	"time"
)

type ScoreRecord struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	RoomPIN    string    `json:"roomPin"`
	RecordedAt time.Time `json:"recordedAt"`
}

func (d *DB) RecordScore(playerName string, score int, roomPIN string) error {
	_, err := d.conn.Exec(`
		INSERT INTO scores (player_name, score, room_pin)
		VALUES ($1, $2, $3)
	`, playerName, score, roomPIN)
	if err != nil {
		return fmt.Errorf("recording score: %w", err)
	}
	return nil
}

// ListScores returns the score history, highest first.
func (d *DB) ListScores() ([]ScoreRecord, error) {
	rows, err := d.conn.Query(`
		SELECT id, player_name, score, room_pin, recorded_at
		FROM scores
		ORDER BY score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}
	defer rows.Close()

	var list []ScoreRecord
	for rows.Next() {
		var s ScoreRecord
		if err := rows.Scan(&s.ID, &s.PlayerName, &s.Score, &s.RoomPIN, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (d *DB) DeleteScore(id string) error {
	_, err := d.conn.Exec(`DELETE FROM scores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting score: %w", err)
	}
	return nil
}
