package rooms

import (
	"livequiz/internal/players"
	"livequiz/internal/questions"
	"livequiz/internal/scoring"
	"sort"
	"sync"
	"time"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusInGame   Status = "IN_GAME"
	StatusFinished Status = "FINISHED"
)

// Room is the unit of serialized mutation: every operation below takes the
// room mutex, so scoring, question advancement, and leaderboard reads all
// see a consistent deck index and answer ledger. Rooms never share state.
type Room struct {
	PIN       string
	HostConn  string
	CreatedAt time.Time

	mu        sync.Mutex
	status    Status
	players   *players.Store
	questions []questions.Question
	current   int
	// answers[questionIndex][playerID] is append-only: a player scores at
	// most once per question, and retried submissions replay the original
	// outcome.
	answers map[int]map[string]scoring.Result
}

func New(pin string, hostConn string) *Room {
	return &Room{
		PIN:       pin,
		HostConn:  hostConn,
		CreatedAt: time.Now(),
		status:    StatusWaiting,
		players:   players.NewStore(),
		current:   -1,
		answers:   make(map[int]map[string]scoring.Result),
	}
}

func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Room) CurrentIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *Room) PlayerCount() int {
	return r.players.Len()
}

// AddPlayer admits a player into the lobby. Duplicate display names are
// fine; only the generated id identifies a player.
func (r *Room) AddPlayer(name string, conn string) (*players.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusWaiting {
		return nil, ErrRoomNotJoinable
	}
	return r.players.Add(name, conn), nil
}

// RemovePlayer drops the player behind a connection ref. Removing an
// unknown connection is a no-op, returning nil.
func (r *Room) RemovePlayer(conn string) *players.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.players.RemoveByConn(conn)
}

func (r *Room) StartGame(qs []questions.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusWaiting {
		return ErrInvalidTransition
	}
	if len(qs) == 0 {
		return ErrEmptyDeck
	}
	r.status = StatusInGame
	r.questions = qs
	r.current = -1
	return nil
}

// AdvanceQuestion moves to the next question and returns it. When the deck
// is exhausted it transitions the room to FINISHED and returns nil with no
// error, which callers must treat as "game over", not failure.
func (r *Room) AdvanceQuestion() (*questions.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusInGame {
		return nil, ErrNotInGame
	}
	if r.current+1 < len(r.questions) {
		r.current++
		q := r.questions[r.current]
		return &q, nil
	}
	r.status = StatusFinished
	return nil, nil
}

// RecordAnswer scores an answer against the current question. A second
// submission from the same player for the same question is a no-op that
// replays the recorded outcome, with duplicate set so callers can avoid
// double-counting.
func (r *Room) RecordAnswer(playerID string, choice, timeLeft, maxTime int) (res scoring.Result, duplicate bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusInGame || r.current < 0 {
		return scoring.Result{}, false, ErrNotInGame
	}
	p := r.players.Get(playerID)
	if p == nil {
		return scoring.Result{}, false, ErrUnknownPlayer
	}
	if prev, ok := r.answers[r.current][playerID]; ok {
		return prev, true, nil
	}

	q := r.questions[r.current]
	points, streak, correct := scoring.Evaluate(choice, q.CorrectAnswer, timeLeft, maxTime, p.Streak)
	p = r.players.Apply(playerID, points, streak)

	res = scoring.Result{IsCorrect: correct, Points: points, TotalScore: p.Score, Streak: p.Streak}
	if r.answers[r.current] == nil {
		r.answers[r.current] = make(map[string]scoring.Result)
	}
	r.answers[r.current][playerID] = res
	return res, false, nil
}

// AnswerCount reports how many players have answered the current question.
func (r *Room) AnswerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.answers[r.current])
}

// Leaderboard returns player snapshots sorted by score descending; ties
// keep join order. limit <= 0 means no cap.
func (r *Room) Leaderboard(limit int) []players.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.players.List()
	board := make([]players.Player, 0, len(list))
	for _, p := range list {
		board = append(board, *p)
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Score > board[j].Score
	})
	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}
	return board
}
