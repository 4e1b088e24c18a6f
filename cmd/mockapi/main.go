// mockapi is the development stand-in for the pet-management REST API.
// It serves the five resource collections from a seeded in-memory
// dataset so the dashboard can run without the production backend.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	adapterHTTP "github.com/petboard/petboard/internal/adapters/handler/http"
	"github.com/petboard/petboard/internal/adapters/repository"
)

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	serverPort := os.Getenv("MOCKAPI_PORT")
	if serverPort == "" {
		serverPort = "4000"
	}

	dataset := repository.SeededDataset()
	handler := adapterHTTP.NewResourceHandler(dataset)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		ResourceHandler: handler,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Mock API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
