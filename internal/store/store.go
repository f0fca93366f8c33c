// Package store abstracts the key-value store the intake service persists
// to.  The store offers only single-key operations: reads, unconditional and
// conditional ("must not exist") writes, atomic numeric increments,
// idempotent deletes and unordered prefix scans.  There are no transactions
// and no secondary indexes — every higher-level guarantee in this codebase
// (exclusive slot locks, collision-free sequential ids, exact counters) is
// built from these primitives alone.
package store

import (
    "context"
    "errors"
    "time"
)

// ErrKeyExists is returned by PutIfAbsent when the target key already holds
// a value.  Callers use this as their atomic test-and-set signal: the
// conditional put either created the key or reports that someone else did.
var ErrKeyExists = errors.New("store: key already exists")

// ErrNotFound is returned by Get when the key does not exist.  Delete never
// returns it; deleting a missing key is a no-op.
var ErrNotFound = errors.New("store: key not found")

// Store is the single synchronization primitive shared by all request
// workers.  Implementations must guarantee that for concurrent PutIfAbsent
// calls on the same key exactly one succeeds, that IncrBy is atomic (a
// missing key counts as zero), and that reads after a successful conditional
// write observe the written value.  ScanPrefix may be eventually consistent
// and returns keys in no particular order.
type Store interface {
    // Get returns the value stored at key, or ErrNotFound.
    Get(ctx context.Context, key string) ([]byte, error)

    // Put writes value at key unconditionally.  A non-zero ttl asks the
    // store to expire the key after that duration; implementations that
    // cannot expire keep the value forever.
    Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

    // PutIfAbsent writes value at key only if the key does not exist,
    // returning ErrKeyExists otherwise.
    PutIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) error

    // IncrBy atomically adds delta to the integer at key and returns the
    // new value.  A missing key is created with an initial value of zero
    // before the add.
    IncrBy(ctx context.Context, key string, delta int64) (int64, error)

    // Delete removes key.  Deleting a missing key is not an error.
    Delete(ctx context.Context, key string) error

    // ScanPrefix returns all keys starting with prefix together with their
    // values.  The result is unordered and may lag recent writes.
    ScanPrefix(ctx context.Context, prefix string) (map[string][]byte, error)
}
