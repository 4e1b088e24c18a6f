package gateway

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petboard/petboard/internal/core/domain"
)

const (
	keyClients      = "petboard:clients"
	keyPets         = "petboard:pets"
	keyVaccinations = "petboard:vaccinations"
	keyGrooming     = "petboard:grooming"
	keyBookings     = "petboard:bookings"
)

var _ Gateway = (*CachedGateway)(nil)

// CachedGateway puts a shared redis read-through cache in front of the
// list fetches. Cache failures are logged and fall through to the inner
// gateway; writes invalidate the collection they touched.
type CachedGateway struct {
	next  Gateway
	cache *redis.Client
	ttl   time.Duration
}

func NewCached(next Gateway, cache *redis.Client, ttl time.Duration) *CachedGateway {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedGateway{next: next, cache: cache, ttl: ttl}
}

func (c *CachedGateway) ListClients(ctx context.Context) ([]domain.Client, error) {
	return listThrough(ctx, c, keyClients, c.next.ListClients)
}

func (c *CachedGateway) ListPets(ctx context.Context) ([]domain.Pet, error) {
	return listThrough(ctx, c, keyPets, c.next.ListPets)
}

func (c *CachedGateway) ListVaccinations(ctx context.Context) ([]domain.Vaccination, error) {
	return listThrough(ctx, c, keyVaccinations, c.next.ListVaccinations)
}

func (c *CachedGateway) ListGrooming(ctx context.Context) ([]domain.Grooming, error) {
	return listThrough(ctx, c, keyGrooming, c.next.ListGrooming)
}

func (c *CachedGateway) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return listThrough(ctx, c, keyBookings, c.next.ListBookings)
}

func (c *CachedGateway) UpdatePet(ctx context.Context, id int64, patch domain.PetPatch) (domain.Pet, error) {
	pet, err := c.next.UpdatePet(ctx, id, patch)
	if err != nil {
		return domain.Pet{}, err
	}
	c.invalidate(ctx, keyPets)
	return pet, nil
}

func (c *CachedGateway) CreateVaccination(ctx context.Context, input domain.NewVaccination) (domain.Vaccination, error) {
	created, err := c.next.CreateVaccination(ctx, input)
	if err != nil {
		return domain.Vaccination{}, err
	}
	c.invalidate(ctx, keyVaccinations)
	return created, nil
}

func (c *CachedGateway) invalidate(ctx context.Context, key string) {
	if err := c.cache.Del(ctx, key).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", key, err)
	}
}

func listThrough[T any](ctx context.Context, c *CachedGateway, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	val, err := c.cache.Get(ctx, key).Result()
	if err == nil {
		var items []T
		if err := json.Unmarshal([]byte(val), &items); err == nil {
			return items, nil
		}

		log.Printf("[CACHE] Corrupted data at %s, cleaning up key", key)
		c.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if setErr := c.cache.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	} else {
		log.Printf("[CACHE] Marshal error for %s: %v", key, err)
	}

	return items, nil
}
