package server

import (
	"encoding/json"
	"livequiz/internal/config"
	"livequiz/internal/db"
	"livequiz/internal/questions"
	"livequiz/internal/router"
	"livequiz/internal/rooms"
	"livequiz/internal/wshub"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

type Server struct {
	Rooms  *rooms.Store
	Hub    *wshub.Hub
	Router *router.Router
	DB     *db.DB // nil if no database configured
	Cfg    config.Config
}

// handleWS upgrades the connection and runs its read loop. Each connection
// gets an opaque id that serves as its ref everywhere in the engine; the
// router owns all cleanup when the loop ends.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[Handle:WS] Accept error: %v\n", err)
		return
	}

	connID := uuid.New().String()
	client := &wshub.Client{
		ID:   connID,
		Conn: conn,
		Send: make(chan []byte, 64),
	}
	s.Hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	log.Printf("[Handle:WS] connection %s open\n", connID)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			break
		}
		s.Router.HandleMessage(connID, data)
	}

	s.Router.HandleDisconnect(connID)
	conn.Close(websocket.StatusNormalClosure, "")
	log.Printf("[Handle:WS] connection %s closed\n", connID)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if creds.Username == s.Cfg.AdminUsername && creds.Password == s.Cfg.AdminPassword {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials"})
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	list, err := s.DB.ListQuestions()
	if err != nil {
		log.Printf("[Handle:Questions] %v\n", err)
		http.Error(w, "failed to list questions", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []questions.Question{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (s *Server) handleAddQuestion(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	var q questions.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := q.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := s.DB.AddQuestion(q)
	if err != nil {
		log.Printf("[Handle:Questions] %v\n", err)
		http.Error(w, "failed to add question", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := s.DB.DeleteQuestion(r.PathValue("id")); err != nil {
		log.Printf("[Handle:Questions] %v\n", err)
		http.Error(w, "failed to delete question", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	list, err := s.DB.ListScores()
	if err != nil {
		log.Printf("[Handle:Scores] %v\n", err)
		http.Error(w, "failed to list scores", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []db.ScoreRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (s *Server) handleDeleteScore(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := s.DB.DeleteScore(r.PathValue("id")); err != nil {
		log.Printf("[Handle:Scores] %v\n", err)
		http.Error(w, "failed to delete score", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": status, "error": err.Error()})
			return
		}
	}
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
