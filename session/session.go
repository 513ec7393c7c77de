// Package session keeps independently owned grids keyed by UUID.
//
// A floodfill.Grid has no locking of its own. Each Session guards its grid
// with a mutex and every read or mutation goes through Do, so one request at
// a time touches a grid. The Store map is guarded separately.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/floodgrid/floodfill"
)

var (
	// ErrSessionNotFound is returned for an unknown session ID.
	ErrSessionNotFound = errors.New("session: not found")
	// ErrStoreFull is returned when MaxSessions live sessions already exist.
	ErrStoreFull = errors.New("session: store is full")
)

// Session owns one grid.
type Session struct {
	ID uuid.UUID

	mu   sync.Mutex
	grid *floodfill.Grid
}

// Do runs fn with exclusive access to the session's grid.
func (s *Session) Do(fn func(g *floodfill.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.grid)
}

// Config holds the settings applied to every new grid.
type Config struct {
	GridSize     int
	RandomTrials int
	MaxSessions  int // 0 for unlimited
	Logger       *logrus.Logger
}

// Store holds live sessions.
type Store struct {
	cfg      Config
	log      *logrus.Entry
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty store.
func NewStore(cfg Config) *Store {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Store{
		cfg:      cfg,
		log:      cfg.Logger.WithField("component", "session"),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create builds a new grid and registers it under a fresh ID. A non-nil seed
// makes Randomize reproducible for that grid.
func (st *Store) Create(seed *uint64) (*Session, error) {
	id := uuid.New()
	opts := []floodfill.Option{
		floodfill.WithRandomTrials(st.cfg.RandomTrials),
		floodfill.WithLogger(st.log.WithField("session", id.String())),
	}
	if seed != nil {
		opts = append(opts, floodfill.WithSeed(*seed))
	}
	g, err := floodfill.NewGrid(st.cfg.GridSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("session: create grid: %w", err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.cfg.MaxSessions > 0 && len(st.sessions) >= st.cfg.MaxSessions {
		return nil, ErrStoreFull
	}
	s := &Session{ID: id, grid: g}
	st.sessions[id] = s
	st.log.WithFields(logrus.Fields{"session": id.String(), "size": st.cfg.GridSize}).Info("session created")
	return s, nil
}

// Get returns the session for id, or ErrSessionNotFound.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete drops the session for id, or returns ErrSessionNotFound.
func (st *Store) Delete(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	st.log.WithField("session", id.String()).Info("session deleted")
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
