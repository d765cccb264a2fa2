// Package events defines the wire protocol: event names, payload schemas,
// and the JSON envelope every message travels in. Names and shapes match
// the existing clients and must not change.
package events

import (
	"encoding/json"
	"fmt"
)

// Inbound event names.
const (
	CreateRoom              = "create_room"
	StartGame               = "start_game"
	HostNextQuestion        = "host_next_question"
	HostShowLeaderboard     = "host_show_leaderboard"
	HostShowQuestionResults = "host_show_question_results"
	JoinRoom                = "join_room"
	SubmitAnswer            = "submit_answer"
)

// Outbound event names.
const (
	RoomCreated         = "room_created"
	PlayerJoined        = "player_joined"
	GameStarted         = "game_started"
	NextQuestion        = "next_question"
	ShowQuestionResults = "show_question_results"
	ShowLeaderboard     = "show_leaderboard"
	GameOver            = "game_over"
	JoinedRoom          = "joined_room"
	Error               = "error"
	AnswerResult        = "answer_result"
	PlayerAnswered      = "player_answered"
	HostDisconnected    = "host_disconnected"
	PlayerLeft          = "player_left"
)

// Envelope frames every message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Decode parses an inbound frame. Payload validation happens per event
// type after dispatch.
func Decode(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("decoding envelope: %w", err)
	}
	if env.Event == "" {
		return Envelope{}, fmt.Errorf("envelope has no event name")
	}
	return env, nil
}

// Marshal builds a wire-ready outbound frame.
func Marshal(event string, data any) ([]byte, error) {
	env := Envelope{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding %s payload: %w", event, err)
		}
		env.Data = raw
	}
	return json.Marshal(env)
}
