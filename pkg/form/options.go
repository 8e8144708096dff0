package form

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	id        string
	ctx       context.Context
	logger    *slog.Logger
	onSuccess []callback
	onChange  []callback
}

// callback erases the value type of a typed handler; New checks accepts
// against the engine's types before any call.
type callback struct {
	call    func(any)
	accepts func(any) bool
}

func defaultConfig() config {
	return config{
		ctx:    context.Background(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithID overrides the generated form instance id.
func WithID(id string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			cfg.id = trimmed
		}
	}
}

// WithContext sets the context used when emitting lifecycle signals.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		if ctx != nil {
			cfg.ctx = ctx
		}
	}
}

// WithLogger routes engine logs to logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSuccessHandler registers fn to run exactly once, with the final field
// values, after the form transitions to StatusSubmissionSucceeded. New fails
// with ErrHandlerType when V differs from the engine's value type.
func WithSuccessHandler[V any](fn func(Fields[V])) Option {
	return func(cfg *config) {
		if fn == nil {
			return
		}
		cfg.onSuccess = append(cfg.onSuccess, callback{
			call: func(v any) { fn(v.(Fields[V])) },
			accepts: func(v any) bool {
				_, ok := v.(Fields[V])
				return ok
			},
		})
	}
}

// WithChangeListener registers fn to receive every new state. Listeners run
// outside the engine lock and may read from or dispatch to the engine. New
// fails with ErrHandlerType when V differs from the engine's value type.
func WithChangeListener[V any](fn func(State[V])) Option {
	return func(cfg *config) {
		if fn == nil {
			return
		}
		cfg.onChange = append(cfg.onChange, callback{
			call: func(v any) { fn(v.(State[V])) },
			accepts: func(v any) bool {
				_, ok := v.(State[V])
				return ok
			},
		})
	}
}
