// Package main implements the entry point for the contacts directory
// server: CRUD over a shared contact list plus credential-based login
// issuing bearer tokens.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
