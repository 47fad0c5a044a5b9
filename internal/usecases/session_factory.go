package usecases

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// SessionFactory lazily creates and memoizes capability sessions.
type SessionFactory interface {
	// GetOrCreate returns the live session for the descriptor key, creating it when absent.
	// Creation is gated by a fresh probe; an unusable status fails with
	// *domain.CapabilityUnavailableErr without calling the host.
	GetOrCreate(ctx context.Context, d domain.CapabilityDescriptor, observer domain.ProgressObserver) (domain.Session, error)
}

// SessionFactoryImpl is the implementation of the SessionFactory use case. It owns every
// session of its execution context; sessions live as long as the factory.
type SessionFactoryImpl struct {
	probe    CapabilityProbe
	registry domain.CapabilityRegistry
	logger   *log.Logger

	mu       *sync.Mutex
	sessions map[string]domain.Session
	watchers map[string]map[*progressWatcher]struct{}
	creating *singleflight.Group
}

// progressWatcher is one caller waiting on a session creation.
type progressWatcher struct {
	observer domain.ProgressObserver
}

// NewSessionFactoryImpl creates a new instance of SessionFactoryImpl.
func NewSessionFactoryImpl(p CapabilityProbe, r domain.CapabilityRegistry, l *log.Logger) SessionFactoryImpl {
	return SessionFactoryImpl{
		probe:    p,
		registry: r,
		logger:   l,
		mu:       &sync.Mutex{},
		sessions: map[string]domain.Session{},
		watchers: map[string]map[*progressWatcher]struct{}{},
		creating: &singleflight.Group{},
	}
}

// GetOrCreate implements SessionFactory. Concurrent callers for the same key share one
// creation; each receives the download progress and may stop waiting when its own ctx is
// done without failing the others.
func (f SessionFactoryImpl) GetOrCreate(ctx context.Context, d domain.CapabilityDescriptor, observer domain.ProgressObserver) (domain.Session, error) {
	key := d.Key()
	if s, ok := f.cached(key); ok {
		return s, nil
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("capability", string(d.Name)),
		attribute.String("session_key", key),
	))
	defer span.End()

	if observer != nil {
		defer f.watch(key, observer)()
	}

	// The creation outlives the caller that started it.
	createCtx := context.WithoutCancel(spanCtx)
	resCh := f.creating.DoChan(key, func() (any, error) {
		if s, ok := f.cached(key); ok {
			return s, nil
		}
		return f.create(createCtx, d)
	})

	select {
	case res := <-resCh:
		if telemetry.RecordErrorAndStatus(span, res.Err) {
			return nil, res.Err
		}
		return res.Val.(domain.Session), nil
	case <-ctx.Done():
		telemetry.RecordErrorAndStatus(span, ctx.Err())
		return nil, ctx.Err()
	}
}

func (f SessionFactoryImpl) create(ctx context.Context, d domain.CapabilityDescriptor) (domain.Session, error) {
	status := f.probe.Probe(ctx, d)
	if !status.Usable() {
		return nil, domain.NewCapabilityUnavailableErr(d.Name, status)
	}

	host, ok := f.registry.Lookup(d.Name, d.Tier)
	if !ok {
		return nil, domain.NewCapabilityUnavailableErr(d.Name, domain.Unavailable(fmt.Sprintf("%s API not supported", d.Name)))
	}

	key := d.Key()
	progress := domain.ProgressObserverFunc(func(fraction float64) {
		RecordDownloadProgress(ctx, d.Name, fraction)
		f.broadcast(key, fraction)
	})

	if status.State == domain.AvailabilityState_Downloadable {
		f.logger.Printf("SessionFactory: %s model needs a download, creating session", d.Name)
	}

	session, err := host.Create(ctx, d, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s session: %w", d.Name, err)
	}

	session = serialize(session)

	f.mu.Lock()
	f.sessions[key] = session
	f.mu.Unlock()

	return session, nil
}

// watch adds observer to the receivers of the key's download progress and returns the
// function removing it.
func (f SessionFactoryImpl) watch(key string, observer domain.ProgressObserver) func() {
	w := &progressWatcher{observer: observer}

	f.mu.Lock()
	if f.watchers[key] == nil {
		f.watchers[key] = map[*progressWatcher]struct{}{}
	}
	f.watchers[key][w] = struct{}{}
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.watchers[key], w)
		if len(f.watchers[key]) == 0 {
			delete(f.watchers, key)
		}
	}
}

func (f SessionFactoryImpl) broadcast(key string, fraction float64) {
	f.mu.Lock()
	observers := make([]domain.ProgressObserver, 0, len(f.watchers[key]))
	for w := range f.watchers[key] {
		observers = append(observers, w.observer)
	}
	f.mu.Unlock()

	for _, o := range observers {
		o.OnProgress(fraction)
	}
}

func (f SessionFactoryImpl) cached(key string) (domain.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[key]
	return s, ok
}

// serialize wraps a host session so that invocations against the same memoized session
// never overlap. Host sessions are not assumed to be re-entrant.
func serialize(s domain.Session) domain.Session {
	mu := &sync.Mutex{}
	if ss, ok := s.(domain.StreamingSession); ok {
		return serializedStreamingSession{serializedSession: serializedSession{mu: mu, inner: s}, streaming: ss}
	}
	return serializedSession{mu: mu, inner: s}
}

type serializedSession struct {
	mu    *sync.Mutex
	inner domain.Session
}

func (s serializedSession) Invoke(ctx context.Context, input domain.CapabilityInput) (domain.CapabilityOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Invoke(ctx, input)
}

type serializedStreamingSession struct {
	serializedSession
	streaming domain.StreamingSession
}

func (s serializedStreamingSession) InvokeStreaming(ctx context.Context, input domain.CapabilityInput, onChunk func(string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming.InvokeStreaming(ctx, input, onChunk)
}

// InitSessionFactory initializes the SessionFactory use case.
type InitSessionFactory struct {
	Probe    CapabilityProbe           `resolve:""`
	Registry domain.CapabilityRegistry `resolve:""`
	Logger   *log.Logger               `resolve:""`
}

// Initialize registers the SessionFactory use case implementation.
func (i InitSessionFactory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SessionFactory](NewSessionFactoryImpl(i.Probe, i.Registry, i.Logger))
	return ctx, nil
}
