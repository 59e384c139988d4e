package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/gymroutines/internal/kvstore"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Store holds the single profile of this installation and mirrors it
// under the userProfile key.
type Store struct {
	mutex   sync.RWMutex
	profile UserProfile
	kv      kvstore.Store
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		profile: Default(),
		kv:      kv,
	}
}

func (s *Store) Get() UserProfile {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.profile.Clone()
}

// ActiveInjuries of the current profile.
func (s *Store) ActiveInjuries() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.profile.ActiveInjuries()
}

// Save replaces the profile wholesale. The in-memory profile is replaced
// even when persisting fails.
func (s *Store) Save(ctx context.Context, p UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.store.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.profile = p.Clone()
	if s.profile.Injuries == nil {
		s.profile.Injuries = Default().Injuries
	}

	data, err := json.Marshal(s.profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyUserProfile, data); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

// Load restores the mirrored profile. A missing or unreadable blob keeps
// the default profile and is not reported as an error.
func (s *Store) Load(ctx context.Context) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.store.load")
	defer span.End()

	data, err := s.kv.Get(ctx, kvstore.KeyUserProfile)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			log.Errorf("load profile: %s", err)
		}
		return
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		log.Errorf("load profile, corrupt blob: %s", err)
		return
	}

	s.mutex.Lock()
	s.profile = p
	s.mutex.Unlock()
	log.Debugf("profile loaded: %s", p.Name)
}
