package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/multierr"
)

// AllKeys lists every key the service mirrors.
var AllKeys = []string{KeyRoutines, KeyWorkoutLogs, KeyUserProfile}

// Snapshot is a point-in-time copy of all mirrored blobs. Missing keys are
// left out of Blobs.
type Snapshot struct {
	TakenAt time.Time                  `json:"takenAt"`
	Blobs   map[string]json.RawMessage `json:"blobs"`
}

func Export(ctx context.Context, store Store, now time.Time) (Snapshot, error) {
	snapshot := Snapshot{
		TakenAt: now,
		Blobs:   make(map[string]json.RawMessage, len(AllKeys)),
	}
	for _, key := range AllKeys {
		value, err := store.Get(ctx, key)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("export [%s]: %w", key, err)
		}
		if !json.Valid(value) {
			return Snapshot{}, fmt.Errorf("export [%s]: stored value is not json", key)
		}
		snapshot.Blobs[key] = value
	}
	return snapshot, nil
}

// Import writes every blob of the snapshot back. Unknown keys are rejected
// before anything is written.
func Import(ctx context.Context, store Store, snapshot Snapshot) error {
	for key := range snapshot.Blobs {
		if !slices.Contains(AllKeys, key) {
			return fmt.Errorf("import: unknown key [%s]", key)
		}
	}

	var err error
	for _, key := range AllKeys {
		value, ok := snapshot.Blobs[key]
		if !ok {
			continue
		}
		if setErr := store.Set(ctx, key, value); setErr != nil {
			err = multierr.Append(err, fmt.Errorf("import [%s]: %w", key, setErr))
		}
	}
	return err
}
