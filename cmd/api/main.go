package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segue-audio/segue/internal/adapters/rest"
	"github.com/segue-audio/segue/internal/adapters/spotify"
	"github.com/segue-audio/segue/internal/adapters/sqlite"
	"github.com/segue-audio/segue/internal/core/services"
	"github.com/segue-audio/segue/internal/worker"
)

func main() {
	// 1. Configuration (Environment Variables)
	// It's best practice to crash early if required config is missing.
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("FATAL: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	dbPath := os.Getenv("SEGUE_DB_PATH")
	if dbPath == "" {
		dbPath = "segue.db"
	}

	addr := os.Getenv("SEGUE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// 2. Initialize "Driven" Adapters (The Tools)
	// -- History Repository
	history, err := sqlite.NewAdapter(dbPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer history.Close()

	// -- Spotify Adapter (serves both the catalog and analysis ports)
	spotifyClient := spotify.NewClient(clientID, clientSecret)

	// -- Preview Analysis Workers
	pool := worker.NewPool(history, 100)
	pool.Start(2)
	defer pool.Stop()

	// 3. Initialize Core Logic (The Driver)
	// This is Dependency Injection in action.
	// We inject the specific adapters into the agnostic service.
	svc := services.NewRecommender(spotifyClient, spotifyClient, history, pool)

	// 4. Initialize "Driving" Adapter (The Interface)
	// The HTTP handler talks to the Service.
	handler := rest.NewHandler(svc)

	// 5. Start the Server
	log.Println("------------------------------------------------")
	log.Printf("🎶 Segue API is running on http://localhost%s", addr)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
