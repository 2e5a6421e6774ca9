package main

import (
	"log"

	fortytwo "github.com/moonollie/fortytwo"
	"github.com/moonollie/fortytwo/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	store := fortytwo.NewInMemoryGameStore()
	s := server.NewServer(store, cfg)

	log.Printf("Listening on %s...", cfg.Addr())
	log.Fatal(s.ListenAndServe())
}
