package server

import (
	"fmt"
	"livequiz/internal/config"
	"livequiz/internal/db"
	"livequiz/internal/router"
	"livequiz/internal/rooms"
	"livequiz/internal/wshub"
	"log"
	"net/http"
)

func Run() error {
	cfg := config.Load()

	roomStore := rooms.NewStore()
	hub := wshub.NewHub()

	srv := &Server{
		Rooms: roomStore,
		Hub:   hub,
		Cfg:   cfg,
	}

	// Optional database connection
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else {
			if err := database.Migrate(); err != nil {
				log.Printf("[DB] Migration failed: %v\n", err)
			}
			srv.DB = database
			log.Println("[DB] Database connected and migrations applied")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	srv.Router = router.New(roomStore, hub, srv.DB, cfg.LeaderboardSize)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("POST /api/login", srv.handleLogin)
	mux.HandleFunc("GET /api/questions", srv.handleListQuestions)
	mux.HandleFunc("POST /api/questions", srv.handleAddQuestion)
	mux.HandleFunc("DELETE /api/questions/{id}", srv.handleDeleteQuestion)
	mux.HandleFunc("GET /api/scores", srv.handleListScores)
	mux.HandleFunc("DELETE /api/scores/{id}", srv.handleDeleteScore)
	mux.HandleFunc("/health", srv.handleHealth)

	addr := "0.0.0.0:" + cfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", cfg.Port)
	return http.ListenAndServe(addr, mux)
}
