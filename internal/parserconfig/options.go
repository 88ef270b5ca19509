package parserconfig

import "log/slog"

// Option configures a Store at construction time.
type Option func(*Store)

// WithCreate makes Load create the file empty when it does not exist instead
// of failing with CodeNotFound.
func WithCreate(create bool) Option {
	return func(s *Store) {
		s.create = create
	}
}

// WithLogger sets the logger used for load/unload/save notices.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
