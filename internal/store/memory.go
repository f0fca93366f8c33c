package store

import (
    "context"
    "strconv"
    "strings"
    "sync"
    "time"
)

// Memory is an in-process Store used by unit tests and as a degraded mode
// when no Redis address is configured.  A single mutex serializes every
// operation, which gives the same per-key atomicity guarantees the Redis
// adapter gets from the server.  Expiry is honored lazily on read and scan.
type Memory struct {
    mu    sync.Mutex
    items map[string]memoryItem
}

type memoryItem struct {
    value     []byte
    expiresAt time.Time // zero means no expiry
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
    return &Memory{items: make(map[string]memoryItem)}
}

func (m *Memory) live(key string) (memoryItem, bool) {
    it, ok := m.items[key]
    if !ok {
        return memoryItem{}, false
    }
    if !it.expiresAt.IsZero() && time.Now().After(it.expiresAt) {
        delete(m.items, key)
        return memoryItem{}, false
    }
    return it, true
}

func expiry(ttl time.Duration) time.Time {
    if ttl <= 0 {
        return time.Time{}
    }
    return time.Now().Add(ttl)
}

// Get returns the value at key or ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    it, ok := m.live(key)
    if !ok {
        return nil, ErrNotFound
    }
    cp := make([]byte, len(it.value))
    copy(cp, it.value)
    return cp, nil
}

// Put stores the value unconditionally.
func (m *Memory) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    cp := make([]byte, len(value))
    copy(cp, value)
    m.items[key] = memoryItem{value: cp, expiresAt: expiry(ttl)}
    return nil
}

// PutIfAbsent stores the value only when the key is missing or expired.
func (m *Memory) PutIfAbsent(_ context.Context, key string, value []byte, ttl time.Duration) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    if _, ok := m.live(key); ok {
        return ErrKeyExists
    }
    cp := make([]byte, len(value))
    copy(cp, value)
    m.items[key] = memoryItem{value: cp, expiresAt: expiry(ttl)}
    return nil
}

// IncrBy adds delta to the integer stored at key, creating it at zero.
func (m *Memory) IncrBy(_ context.Context, key string, delta int64) (int64, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    var cur int64
    if it, ok := m.live(key); ok {
        n, err := strconv.ParseInt(string(it.value), 10, 64)
        if err != nil {
            return 0, err
        }
        cur = n
    }
    cur += delta
    m.items[key] = memoryItem{value: []byte(strconv.FormatInt(cur, 10))}
    return cur, nil
}

// Delete removes the key; missing keys are a no-op.
func (m *Memory) Delete(_ context.Context, key string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    delete(m.items, key)
    return nil
}

// ScanPrefix returns a snapshot of all live entries under prefix.
func (m *Memory) ScanPrefix(_ context.Context, prefix string) (map[string][]byte, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    out := make(map[string][]byte)
    for k := range m.items {
        if !strings.HasPrefix(k, prefix) {
            continue
        }
        it, ok := m.live(k)
        if !ok {
            continue
        }
        cp := make([]byte, len(it.value))
        copy(cp, it.value)
        out[k] = cp
    }
    return out, nil
}
