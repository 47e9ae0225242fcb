package doi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/janelia-scicomp/biblio/record"
)

// Store holds previously fetched bibliographic records keyed by DOI.
// Get signals a miss with a nil record, not an error.
type Store interface {
	Get(ctx context.Context, doi string) (record.Record, error)
	Put(ctx context.Context, doi string, rec record.Record) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]record.Record
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]record.Record)}
}

// Get returns the stored record for a DOI, or nil on a miss.
func (m *MemoryStore) Get(_ context.Context, doi string) (record.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[doi], nil
}

// Put stores a record.
func (m *MemoryStore) Put(_ context.Context, doi string, rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[doi] = rec
	return nil
}

// RedisStore is a Redis-backed Store, for sharing fetched records
// across processes. Records are stored as JSON under a doi: prefix.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store on an existing Redis client. A zero
// TTL keeps records indefinitely.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(doi string) string {
	return "doi:" + doi
}

// Get returns the cached record for a DOI, or nil on a miss.
func (r *RedisStore) Get(ctx context.Context, doi string) (record.Record, error) {
	blob, err := r.client.Get(ctx, redisKey(doi)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading record cache: %w", err)
	}
	var rec record.Record
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, fmt.Errorf("decoding cached record for %s: %w", doi, err)
	}
	return rec, nil
}

// Put caches a record.
func (r *RedisStore) Put(ctx context.Context, doi string, rec record.Record) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record for cache: %w", err)
	}
	if err := r.client.Set(ctx, redisKey(doi), blob, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing record cache: %w", err)
	}
	return nil
}

// GetRecord retrieves a DOI's record store-first: a stored record wins,
// otherwise the appropriate registry is consulted and the result is
// written back. A nil store always fetches. Returns nil when neither
// the store nor the registry knows the DOI.
func GetRecord(ctx context.Context, doi string, store Store, client *Client) (record.Record, error) {
	if store != nil {
		rec, err := store.Get(ctx, doi)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}

	rec, err := client.Fetch(ctx, doi)
	if err != nil || rec == nil {
		return nil, err
	}
	if store != nil {
		if err := store.Put(ctx, doi, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
