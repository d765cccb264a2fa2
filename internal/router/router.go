// Package router translates inbound connection events into room mutations
// and fans the resulting state changes back out to the right audience:
// a single player, the host, or the whole room.
package router

import (
	"encoding/json"
	"livequiz/internal/db"
	"livequiz/internal/events"
	"livequiz/internal/rooms"
	"livequiz/internal/wshub"
	"log"
)

type Router struct {
	rooms           *rooms.Store
	hub             *wshub.Hub
	db              *db.DB // nil if no database configured
	leaderboardSize int
}

func New(store *rooms.Store, hub *wshub.Hub, database *db.DB, leaderboardSize int) *Router {
	return &Router{
		rooms:           store,
		hub:             hub,
		db:              database,
		leaderboardSize: leaderboardSize,
	}
}

// HandleMessage dispatches one inbound frame from a connection. Invalid
// frames and failed validations answer the sender with a generic error
// event; nothing here may take down the process or touch another room.
func (rt *Router) HandleMessage(connID string, raw []byte) {
	env, err := events.Decode(raw)
	if err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid message")
		return
	}

	switch env.Event {
	case events.CreateRoom:
		rt.handleCreateRoom(connID)
	case events.StartGame:
		rt.handleStartGame(connID, env.Data)
	case events.HostNextQuestion:
		rt.handleNextQuestion(connID, env.Data)
	case events.HostShowLeaderboard:
		rt.handleShowLeaderboard(connID, env.Data)
	case events.HostShowQuestionResults:
		rt.handleShowResults(connID, env.Data)
	case events.JoinRoom:
		rt.handleJoinRoom(connID, env.Data)
	case events.SubmitAnswer:
		rt.handleSubmitAnswer(connID, env.Data)
	default:
		rt.hub.SendTo(connID, events.Error, "unknown event")
	}
}

func (rt *Router) handleCreateRoom(connID string) {
	room, err := rt.rooms.Create(connID)
	if err != nil {
		log.Printf("[Router] create room: %v\n", err)
		rt.hub.SendTo(connID, events.Error, "could not create room")
		return
	}
	rt.hub.Join(room.PIN, connID)
	rt.hub.SendTo(connID, events.RoomCreated, room.PIN)
	log.Printf("[Router] room %s created by %s\n", room.PIN, connID)
}

// hostRoom resolves a room and verifies the sender owns it. The host check
// is server-side on the connection ref; client-supplied identity alone is
// never trusted.
func (rt *Router) hostRoom(connID string, pin string) (*rooms.Room, error) {
	room := rt.rooms.Get(pin)
	if room == nil {
		return nil, rooms.ErrRoomNotFound
	}
	if room.HostConn != connID {
		return nil, rooms.ErrUnauthorizedSender
	}
	return room, nil
}

func (rt *Router) handleStartGame(connID string, data json.RawMessage) {
	var p events.StartGamePayload
	if err := json.Unmarshal(data, &p); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return
	}
	if err := p.Validate(); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return
	}

	room, err := rt.hostRoom(connID, p.PIN)
	if err != nil {
		log.Printf("[Router] start_game %s from %s: %v\n", p.PIN, connID, err)
		return
	}
	if err := room.StartGame(p.Questions); err != nil {
		rt.hub.SendTo(connID, events.Error, err.Error())
		return
	}
	rt.hub.Broadcast(room.PIN, events.GameStarted, nil)
	log.Printf("[Router] game started in room %s\n", room.PIN)
}

func (rt *Router) handleNextQuestion(connID string, data json.RawMessage) {
	p, ok := rt.hostAction(connID, data)
	if !ok {
		return
	}
	room, err := rt.hostRoom(connID, p.PIN)
	if err != nil {
		log.Printf("[Router] host_next_question %s from %s: %v\n", p.PIN, connID, err)
		return
	}

	q, err := room.AdvanceQuestion()
	if err != nil {
		rt.hub.SendTo(connID, events.Error, err.Error())
		return
	}
	if q != nil {
		rt.hub.Broadcast(room.PIN, events.NextQuestion, q)
		return
	}

	// Deck exhausted: the game is over.
	rt.hub.Broadcast(room.PIN, events.GameOver, room.Leaderboard(rt.leaderboardSize))
	rt.persistScores(room)
	log.Printf("[Router] game over in room %s\n", room.PIN)
}

func (rt *Router) handleShowLeaderboard(connID string, data json.RawMessage) {
	p, ok := rt.hostAction(connID, data)
	if !ok {
		return
	}
	room, err := rt.hostRoom(connID, p.PIN)
	if err != nil {
		log.Printf("[Router] host_show_leaderboard %s from %s: %v\n", p.PIN, connID, err)
		return
	}
	rt.hub.Broadcast(room.PIN, events.ShowLeaderboard, room.Leaderboard(rt.leaderboardSize))
}

func (rt *Router) handleShowResults(connID string, data json.RawMessage) {
	p, ok := rt.hostAction(connID, data)
	if !ok {
		return
	}
	room, err := rt.hostRoom(connID, p.PIN)
	if err != nil {
		log.Printf("[Router] host_show_question_results %s from %s: %v\n", p.PIN, connID, err)
		return
	}
	// Display-only signal, no room mutation.
	rt.hub.Broadcast(room.PIN, events.ShowQuestionResults, nil)
}

func (rt *Router) hostAction(connID string, data json.RawMessage) (events.HostActionPayload, bool) {
	var p events.HostActionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return p, false
	}
	if err := p.Validate(); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return p, false
	}
	return p, true
}

func (rt *Router) handleJoinRoom(connID string, data json.RawMessage) {
	var p events.JoinRoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return
	}
	if err := p.Validate(); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return
	}

	room := rt.rooms.Get(p.PIN)
	if room == nil {
		rt.hub.SendTo(connID, events.Error, "Room not found or already started")
		return
	}
	player, err := room.AddPlayer(p.Name, connID)
	if err != nil {
		rt.hub.SendTo(connID, events.Error, "Room not found or already started")
		return
	}

	rt.hub.Join(room.PIN, connID)
	rt.hub.SendTo(connID, events.JoinedRoom, events.JoinedRoomPayload{PlayerID: player.ID, Name: player.Name})
	rt.hub.SendTo(room.HostConn, events.PlayerJoined, events.PlayerRef{ID: player.ID, Name: player.Name})
	log.Printf("[Router] %s joined room %s\n", player.Name, room.PIN)
}

func (rt *Router) handleSubmitAnswer(connID string, data json.RawMessage) {
	var p events.SubmitAnswerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return
	}
	if err := p.Validate(); err != nil {
		rt.hub.SendTo(connID, events.Error, "invalid payload")
		return
	}

	room := rt.rooms.Get(p.PIN)
	if room == nil {
		rt.hub.SendTo(connID, events.Error, "Room not found")
		return
	}
	res, duplicate, err := room.RecordAnswer(p.PlayerID, p.Answer, p.TimeLeft, p.MaxTime)
	if err != nil {
		log.Printf("[Router] submit_answer in room %s: %v\n", room.PIN, err)
		rt.hub.SendTo(connID, events.Error, "answer rejected")
		return
	}

	rt.hub.SendTo(connID, events.AnswerResult, res)
	if !duplicate {
		// Counter tick for the host's "N answered" display.
		rt.hub.SendTo(room.HostConn, events.PlayerAnswered, nil)
	}
}

// HandleDisconnect tears down whatever the closed connection was attached
// to. A host disconnect is terminal for its room; a player disconnect just
// notifies the host. Late answers from a removed player fail with
// ErrUnknownPlayer on the normal path.
func (rt *Router) HandleDisconnect(connID string) {
	defer rt.hub.Unregister(connID)

	if room := rt.rooms.FindByHost(connID); room != nil {
		rt.hub.Broadcast(room.PIN, events.HostDisconnected, nil)
		rt.rooms.Delete(room.PIN)
		rt.hub.DropRoom(room.PIN)
		log.Printf("[Router] host disconnected, room %s closed\n", room.PIN)
		return
	}

	for _, room := range rt.rooms.List() {
		if p := room.RemovePlayer(connID); p != nil {
			rt.hub.Leave(room.PIN, connID)
			rt.hub.SendTo(room.HostConn, events.PlayerLeft, events.PlayerRef{ID: p.ID})
			log.Printf("[Router] player %s left room %s\n", p.ID, room.PIN)
			return
		}
	}
}

// persistScores writes every player's final score once a game finishes.
// Best-effort: the broadcast already went out and a storage failure must
// not disturb the room.
func (rt *Router) persistScores(room *rooms.Room) {
	if rt.db == nil {
		return
	}
	for _, p := range room.Leaderboard(0) {
		if err := rt.db.RecordScore(p.Name, p.Score, room.PIN); err != nil {
			log.Printf("[Router] RecordScore error: %v\n", err)
		}
	}
}
