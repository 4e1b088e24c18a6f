// dashboard wires the sync core together: remote gateway (optionally
// redis-cached), one store per collection, derived views and the
// background refresh worker, then renders the client/pet listing to the
// terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/petboard/petboard/internal/adapters/cache"
	"github.com/petboard/petboard/internal/adapters/gateway"
	"github.com/petboard/petboard/internal/core/domain"
	"github.com/petboard/petboard/internal/core/store"
	"github.com/petboard/petboard/internal/core/views"
	"github.com/petboard/petboard/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	baseURL := getEnv("API_BASE_URL", "http://localhost:4000")

	gw, err := buildGateway(baseURL)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	clients := store.New(gw.ListClients)
	pets := store.NewPetStore(gw.ListPets)
	vaccinations := store.New(gw.ListVaccinations)
	grooming := store.New(gw.ListGrooming)
	bookings := store.New(gw.ListBookings)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loaders := map[string]workers.Loader{
		"clients":      clients,
		"pets":         pets,
		"vaccinations": vaccinations,
		"grooming":     grooming,
		"bookings":     bookings,
	}

	log.Printf("Loading collections from %s...", baseURL)
	for name, loader := range loaders {
		if err := loader.Load(ctx); err != nil {
			log.Printf("Load failed for %s: %v", name, err)
		}
	}

	v := views.New(clients, pets, vaccinations, grooming, bookings)
	render(v)

	refreshSeconds, err := strconv.Atoi(getEnv("REFRESH_INTERVAL_SECONDS", "60"))
	if err != nil || refreshSeconds <= 0 {
		refreshSeconds = 60
	}

	worker := workers.NewRefreshWorker(loaders, time.Duration(refreshSeconds)*time.Second)
	worker.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	cancel()
}

// buildGateway wraps the HTTP gateway with the redis list cache when
// REDIS_HOST is configured; a missing or unreachable redis just means
// no cache.
func buildGateway(baseURL string) (gateway.Gateway, error) {
	gw, err := gateway.NewHTTP(baseURL, gateway.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		return gw, nil
	}

	rdb, err := cache.NewRedisClient(
		redisHost,
		getEnv("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		0,
	)
	if err != nil {
		log.Printf("Redis unavailable, running without list cache: %v", err)
		return gw, nil
	}

	log.Println("Redis list cache enabled.")
	return gateway.NewCached(gw, rdb, 5*time.Minute), nil
}

func render(v *views.Views) {
	now := time.Now()

	for _, client := range v.ClientsWithPets() {
		fmt.Printf("%s (%s)\n", client.Name, client.Status)
		for _, pet := range client.Pets {
			fmt.Printf("  %s - %s %s, %s, %.4g kg\n",
				pet.Name, pet.Breed, pet.Type,
				domain.FormatAge(pet.DOB, now), pet.WeightKg)
			for _, vac := range v.PetVaccinations(pet.ID) {
				fmt.Printf("    vaccination: %s (due %s)\n", vac.Vaccine, vac.Due)
			}
			for _, g := range v.PetGrooming(pet.ID) {
				fmt.Printf("    grooming: %s on %s\n", g.Service, g.Date)
			}
			for _, b := range v.PetBookings(pet.ID) {
				fmt.Printf("    booking: %s %s to %s (%s)\n", b.Type, b.Start, b.End, b.Status)
			}
		}
	}
}
