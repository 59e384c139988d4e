package kvstore

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Keys of the blobs mirrored by the service.
const (
	KeyRoutines    = "routines"
	KeyWorkoutLogs = "workoutLogs"
	KeyUserProfile = "userProfile"
)

// Store is the durable mirror: an opaque key-value blob store.
// Values are always overwritten wholesale.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)
