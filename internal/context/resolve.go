package context

import (
	"os"
)

// Resolve picks the context a client command should use. An explicit name
// wins over the MONOLITH_CONTEXT variable, which wins over current-context.
// It returns nil without error when nothing is selected; a name given
// explicitly or through the environment must exist.
func (s *Storage) Resolve(name string) (*Context, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = os.Getenv(EnvVar)
	}
	if name == "" {
		return cfg.Current(), nil
	}

	ctx := cfg.Get(name)
	if ctx == nil {
		return nil, &NotFoundError{Name: name}
	}
	return ctx, nil
}
