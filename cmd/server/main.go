package main

import (
	"log"
	"net/http"
	"os"

	"courtpiece-game/internal/database"
	"courtpiece-game/internal/server"
	"courtpiece-game/internal/store"
)

func main() {
	log.Println("Starting Court Piece server...")

	db := database.New()
	defer db.Close()

	st := store.New()

	hub := server.NewHub(st, &db)
	go hub.Run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWs(hub, w, r)
	})

	server.HandleRoutes(st, &db, hub)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("Listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
