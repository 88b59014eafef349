package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for sheet API reads. Each dataset has its own TTL because the
// sheet updates at very different rates (calendar daily, enquiries hourly).
const (
	SummaryKey   = "sheets:summary"
	DetailsKey   = "sheets:details"
	EnquiriesKey = "sheets:enquiries"
	FiltersKey   = "sheets:filters"
	BookingsKey  = "sheets:bookings"
	CalendarKey  = "sheets:calendar"
)

var client *redis.Client

// Init initializes the Redis connection. The service degrades gracefully
// without it: every read falls through to the sheet API.
func Init() error {
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis"
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client, nil when the cache is down.
func GetClient() *redis.Client {
	return client
}

// GetCached returns cached data for a key.
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL.
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidateKeys removes specific cache keys.
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateSheetCaches clears every cached sheet read.
// Called when: submitBooking, refreshData.
func InvalidateSheetCaches(ctx context.Context) {
	InvalidateKeys(ctx, SummaryKey, DetailsKey, EnquiriesKey, FiltersKey, BookingsKey, CalendarKey)
}

// IsHealthy returns true if the Redis connection is working.
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
