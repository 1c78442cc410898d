package presenter

import (
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"profilescreen/internal/favorite"
)

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger. Fetch lifecycle is logged at debug.
func WithLogger(l *zap.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Presenter) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithHooks installs screen-specific hooks.
func WithHooks(h Hooks) Option {
	return func(p *Presenter) { p.hooks = h }
}

// WithPolicy sets how overlapping fetches interact.
func WithPolicy(policy FetchPolicy) Option {
	return func(p *Presenter) { p.policy = policy }
}

// WithFavorites uses m instead of a fresh favourites manager.
func WithFavorites(m *favorite.Manager) Option {
	return func(p *Presenter) {
		if m != nil {
			p.manager = m
		}
	}
}

// WithIDGenerator overrides fetch id generation.
func WithIDGenerator(gen func() FetchID) Option {
	return func(p *Presenter) {
		if gen != nil {
			p.newID = gen
		}
	}
}

func newFetchID() FetchID {
	return FetchID(uuid.NewString())
}
