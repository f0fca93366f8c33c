package store

import (
    "context"
    "errors"
    "time"

    "github.com/redis/go-redis/v9"
)

// Redis adapts a go-redis client to the Store interface.  SETNX provides the
// conditional put, INCRBY the native atomic add and SCAN the prefix scan.
// Conditional-check failures are translated to ErrKeyExists so callers never
// see redis-level errors for the expected contention case.
type Redis struct {
    rdb *redis.Client
}

// NewRedis wraps an already-connected client.  The caller owns the client's
// lifecycle (see config.NewRedisClient for construction).
func NewRedis(rdb *redis.Client) *Redis { return &Redis{rdb: rdb} }

// Get returns the value at key or ErrNotFound.
func (s *Redis) Get(ctx context.Context, key string) ([]byte, error) {
    b, err := s.rdb.Get(ctx, key).Bytes()
    if err != nil {
        if errors.Is(err, redis.Nil) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return b, nil
}

// Put writes the value unconditionally.  ttl <= 0 stores without expiry.
func (s *Redis) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
    if ttl < 0 {
        ttl = 0
    }
    return s.rdb.Set(ctx, key, value, ttl).Err()
}

// PutIfAbsent performs a single SETNX.  The boolean result tells us whether
// this request won the key; losing is reported as ErrKeyExists.
func (s *Redis) PutIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) error {
    if ttl < 0 {
        ttl = 0
    }
    ok, err := s.rdb.SetNX(ctx, key, value, ttl).Result()
    if err != nil {
        return err
    }
    if !ok {
        return ErrKeyExists
    }
    return nil
}

// IncrBy delegates to INCRBY, which creates missing keys at zero.
func (s *Redis) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
    return s.rdb.IncrBy(ctx, key, delta).Result()
}

// Delete removes the key.  DEL on a missing key returns 0, which we ignore.
func (s *Redis) Delete(ctx context.Context, key string) error {
    return s.rdb.Del(ctx, key).Err()
}

// ScanPrefix walks the keyspace with SCAN MATCH prefix* and fetches each
// value.  Keys that expire between the scan and the read are skipped.
func (s *Redis) ScanPrefix(ctx context.Context, prefix string) (map[string][]byte, error) {
    out := make(map[string][]byte)
    var cursor uint64
    for {
        keys, next, err := s.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
        if err != nil {
            return nil, err
        }
        for _, k := range keys {
            b, err := s.rdb.Get(ctx, k).Bytes()
            if err != nil {
                if errors.Is(err, redis.Nil) {
                    continue
                }
                return nil, err
            }
            out[k] = b
        }
        cursor = next
        if cursor == 0 {
            break
        }
    }
    return out, nil
}
