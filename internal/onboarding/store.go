package onboarding

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"celerey/internal/logger"
)

// Slot is the durable key-value entry a Store persists its record into.
// Load returns a nil slice and a nil error when nothing has been stored yet.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// ChangeKind names the operation that produced a new record.
type ChangeKind string

const (
	ChangeHydrate  ChangeKind = "hydrate"
	ChangeUpdate   ChangeKind = "update"
	ChangeStep     ChangeKind = "step"
	ChangeComplete ChangeKind = "complete"
	ChangeReset    ChangeKind = "reset"
)

// Change describes a mutation delivered to listeners. Step is set for
// ChangeStep and ChangeComplete.
type Change struct {
	Kind ChangeKind `json:"kind"`
	Step int        `json:"step,omitempty"`
}

// Listener observes every successful mutation. It receives a snapshot that
// it may keep or modify freely. Listeners are called one mutation at a time,
// in the order the mutations were applied, and must not mutate the store
// they observe.
type Listener func(change Change, record Record)

// ErrStepOutOfRange is returned by Submit for a step the wizard does not have.
var ErrStepOutOfRange = errors.New("onboarding: step out of range")

// pending is a change waiting to be delivered with the record it produced.
type pending struct {
	change Change
	record Record
}

const defaultPersistTimeout = 5 * time.Second

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPersistTimeout bounds each slot read and write.
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.persistTimeout = d
		}
	}
}

// Store is the sole owner of one onboarding record. Every mutation is applied
// in memory, written to the slot, and then announced to listeners before the
// method returns. Persistence is best-effort: slot failures are logged and
// never reach the caller.
type Store struct {
	mu             sync.Mutex
	slot           Slot
	record         Record
	hydrated       bool
	persistTimeout time.Duration
	log            *zap.SugaredLogger

	// deliverMu is taken before mu is released so listeners see mutations
	// in the order they were applied.
	deliverMu sync.Mutex

	listenerMu sync.Mutex
	listeners  []listenerEntry
	nextID     uint64
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// NewStore returns a store holding the default record. Call Hydrate to load
// the previously persisted record from slot.
func NewStore(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot:           slot,
		record:         DefaultRecord(),
		persistTimeout: defaultPersistTimeout,
		log:            logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate replaces the in-memory record with the one stored in the slot. An
// empty, unreadable or corrupt slot yields the default record; no error is
// reported. The store is marked hydrated either way.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	rec := s.load(ctx)
	s.record = rec
	s.hydrated = true
	s.deliver(pending{change: Change{Kind: ChangeHydrate}, record: rec.Clone()})
}

// Hydrated reports whether Hydrate has completed. Before that the record is
// a placeholder and must not be shown as the applicant's data.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Record returns a snapshot of the current record.
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// Update merges the present fields of p into the record.
func (s *Store) Update(p Patch) {
	s.mutate(Change{Kind: ChangeUpdate}, func(r *Record) bool {
		p.Apply(r)
		return true
	})
}

// SetStep moves the wizard to step. Values outside the wizard's steps are
// ignored so the current step always names a real screen.
func (s *Store) SetStep(step int) {
	if !ValidStep(step) {
		s.log.Debugw("ignoring out-of-range step", "step", step)
		return
	}
	s.mutate(Change{Kind: ChangeStep, Step: step}, func(r *Record) bool {
		r.CurrentStep = step
		return true
	})
}

// CompleteStep appends step to the completed steps. Repeated completions are
// recorded as they happen.
func (s *Store) CompleteStep(step int) {
	s.mutate(Change{Kind: ChangeComplete, Step: step}, func(r *Record) bool {
		r.CompletedSteps = append(r.CompletedSteps, step)
		return true
	})
}

// Reset discards everything entered so far.
func (s *Store) Reset() {
	s.mutate(Change{Kind: ChangeReset}, func(r *Record) bool {
		*r = DefaultRecord()
		return true
	})
}

// Submit merges p into the record and runs check against the result. When
// check passes, step is marked completed and the wizard moves to the next
// step. The merge is kept even when check fails. Everything happens as one
// mutation, so no other change can land between the merge and the
// completion. The error returned is the one from check.
func (s *Store) Submit(step int, p Patch, check func(Record) error) error {
	if !ValidStep(step) {
		return ErrStepOutOfRange
	}

	s.mu.Lock()
	next := s.record.Clone()
	var changes []pending

	if !p.IsEmpty() {
		p.Apply(&next)
		changes = append(changes, pending{change: Change{Kind: ChangeUpdate}, record: next.Clone()})
	}

	err := check(next.Clone())
	if err == nil {
		next.CompletedSteps = append(next.CompletedSteps, step)
		changes = append(changes, pending{change: Change{Kind: ChangeComplete, Step: step}, record: next.Clone()})
		if step < LastStep {
			next.CurrentStep = step + 1
			changes = append(changes, pending{change: Change{Kind: ChangeStep, Step: step + 1}, record: next.Clone()})
		}
	}

	if len(changes) == 0 {
		s.mu.Unlock()
		return err
	}
	s.record = next
	s.persist(next)
	s.deliver(changes...)
	return err
}

// AddAssetCountry appends a country to the asset locations. Blank input and
// countries already present leave the record unchanged.
func (s *Store) AddAssetCountry(country string) {
	country = strings.TrimSpace(country)
	if country == "" {
		return
	}
	s.mutate(Change{Kind: ChangeUpdate}, func(r *Record) bool {
		if slices.Contains(r.AssetCountries, country) {
			return false
		}
		r.AssetCountries = append(slices.Clone(r.AssetCountries), country)
		return true
	})
}

// RemoveAssetCountry drops a country from the asset locations. Removing a
// country that is not present is a no-op.
func (s *Store) RemoveAssetCountry(country string) {
	s.mutate(Change{Kind: ChangeUpdate}, func(r *Record) bool {
		i := slices.Index(r.AssetCountries, country)
		if i < 0 {
			return false
		}
		r.AssetCountries = slices.Delete(slices.Clone(r.AssetCountries), i, i+1)
		return true
	})
}

// RemoveLastAssetCountry drops the most recently added country, if any.
func (s *Store) RemoveLastAssetCountry() {
	s.mutate(Change{Kind: ChangeUpdate}, func(r *Record) bool {
		n := len(r.AssetCountries)
		if n == 0 {
			return false
		}
		r.AssetCountries = slices.Clone(r.AssetCountries[:n-1])
		return true
	})
}

// ToggleGoal selects goal when it is not selected and deselects it otherwise.
func (s *Store) ToggleGoal(goal string) {
	s.mutate(Change{Kind: ChangeUpdate}, func(r *Record) bool {
		goals := slices.Clone(r.FinancialGoals)
		if i := slices.Index(goals, goal); i >= 0 {
			goals = slices.Delete(goals, i, i+1)
		} else {
			goals = append(goals, goal)
		}
		if goals == nil {
			goals = []string{}
		}
		r.FinancialGoals = goals
		return true
	})
}

// Subscribe registers fn to be called after every mutation, in registration
// order. The returned function unregisters it and may be called repeatedly.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenerMu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(e listenerEntry) bool {
			return e.id == id
		})
	}
}

// mutate applies fn under the lock and, when fn reports a change, persists
// the result and notifies listeners. Persisting under the lock keeps slot
// writes in mutation order.
func (s *Store) mutate(change Change, fn func(*Record) bool) {
	s.mu.Lock()
	next := s.record.Clone()
	if !fn(&next) {
		s.mu.Unlock()
		return
	}
	s.record = next
	s.persist(next)
	s.deliver(pending{change: change, record: next.Clone()})
}

// deliver must be called with mu held; it releases mu once delivery order
// is secured and returns after every listener has run.
func (s *Store) deliver(changes ...pending) {
	s.deliverMu.Lock()
	s.mu.Unlock()
	defer s.deliverMu.Unlock()

	for _, p := range changes {
		s.notify(p.change, p.record)
	}
}

func (s *Store) notify(change Change, snapshot Record) {
	s.listenerMu.Lock()
	listeners := slices.Clone(s.listeners)
	s.listenerMu.Unlock()

	for i, l := range listeners {
		rec := snapshot
		if i < len(listeners)-1 {
			rec = snapshot.Clone()
		}
		l.fn(change, rec)
	}
}

func (s *Store) load(ctx context.Context) Record {
	if s.slot == nil {
		return DefaultRecord()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	raw, err := s.slot.Load(ctx)
	if err != nil {
		s.log.Warnw("failed to read onboarding slot, starting from defaults", "error", err)
		return DefaultRecord()
	}
	if len(raw) == 0 {
		return DefaultRecord()
	}

	rec, err := Decode(raw)
	if err != nil {
		s.log.Warnw("discarding unreadable onboarding slot", "error", err)
		return DefaultRecord()
	}
	return rec
}

func (s *Store) persist(rec Record) {
	if s.slot == nil {
		return
	}

	data, err := Encode(rec)
	if err != nil {
		s.log.Errorw("failed to encode onboarding record", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	if err := s.slot.Save(ctx, data); err != nil {
		s.log.Warnw("failed to persist onboarding record", "error", err)
	}
}
