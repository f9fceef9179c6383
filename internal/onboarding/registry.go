package onboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"celerey/internal/logger"
)

// ErrInvalidSession is returned when a store is requested without a session ID.
var ErrInvalidSession = errors.New("onboarding: session id is required")

// SlotFactory returns the durable slot of a session.
type SlotFactory func(sessionID string) Slot

// OpenHook runs once for every store the registry creates, after hydration
// and before the store is handed to any caller.
type OpenHook func(sessionID string, store *Store)

// Registry keeps one Store per onboarding session. Stores are created on
// first use and hydrated before Open returns them, so callers never observe
// a store that has not finished loading. Stores nobody has used for a while
// are dropped by Sweep and rehydrated from their slot on the next Open.
type Registry struct {
	factory SlotFactory
	opts    []Option
	now     func() time.Time

	mu     sync.Mutex
	stores map[string]*registryEntry
	hooks  []OpenHook
}

type registryEntry struct {
	store    *Store
	ready    chan struct{}
	lastUsed time.Time
	holds    int
}

// NewRegistry builds a registry whose stores persist through factory.
func NewRegistry(factory SlotFactory, opts ...Option) *Registry {
	return &Registry{
		factory: factory,
		opts:    opts,
		now:     time.Now,
		stores:  make(map[string]*registryEntry),
	}
}

// OnOpen registers a hook for stores opened from now on.
func (r *Registry) OnOpen(hook OpenHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, hook)
}

// Open returns the hydrated store of sessionID, loading it from its slot on
// first use. Concurrent callers for the same session share one store.
func (r *Registry) Open(ctx context.Context, sessionID string) (*Store, error) {
	entry, err := r.acquire(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	return entry.store, nil
}

// Hold opens the store of sessionID and keeps it in memory until release is
// called, whatever its idle time. Long-lived readers such as event streams
// hold the store they listen to. release may be called more than once.
func (r *Registry) Hold(ctx context.Context, sessionID string) (*Store, func(), error) {
	entry, err := r.acquire(ctx, sessionID, true)
	if err != nil {
		return nil, nil, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			entry.holds--
			entry.lastUsed = r.now()
		})
	}
	return entry.store, release, nil
}

func (r *Registry) acquire(ctx context.Context, sessionID string, hold bool) (*registryEntry, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	r.mu.Lock()
	entry, ok := r.stores[sessionID]
	if !ok {
		entry = &registryEntry{
			store: NewStore(r.factory(sessionID), r.opts...),
			ready: make(chan struct{}),
		}
		r.stores[sessionID] = entry
	}
	entry.lastUsed = r.now()
	if hold {
		entry.holds++
	}
	hooks := append([]OpenHook(nil), r.hooks...)
	r.mu.Unlock()

	if !ok {
		entry.store.Hydrate(ctx)
		for _, hook := range hooks {
			hook(sessionID, entry.store)
		}
		close(entry.ready)
		return entry, nil
	}

	select {
	case <-entry.ready:
		return entry, nil
	case <-ctx.Done():
		if hold {
			r.mu.Lock()
			entry.holds--
			r.mu.Unlock()
		}
		return nil, ctx.Err()
	}
}

// Sweep drops the stores that are not held and have not been opened for
// longer than maxIdle. It returns the number of stores dropped.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, entry := range r.stores {
		select {
		case <-entry.ready:
		default:
			continue
		}
		if entry.holds > 0 || entry.lastUsed.After(cutoff) {
			continue
		}
		delete(r.stores, id)
		dropped++
	}
	return dropped
}

// Run sweeps idle stores until ctx ends. A non-positive maxIdle disables
// eviction.
func (r *Registry) Run(ctx context.Context, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}

	interval := maxIdle / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				logger.Get().Debugw("evicted idle onboarding stores", "count", n, "remaining", r.Len())
			}
		}
	}
}

// Forget drops the in-memory store of sessionID. Its slot is left intact, so
// a later Open rehydrates the same record.
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
}

// Len returns the number of stores currently held in memory.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
