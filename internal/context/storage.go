package context

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	fileName      = "contexts.yaml"
	userConfigDir = ".config/monolith"
)

// Storage reads and writes contexts.yaml. Access within one process is
// serialized; concurrent writers in separate processes are not coordinated.
type Storage struct {
	mu  sync.RWMutex
	dir string
}

// NewStorage uses ~/.config/monolith.
func NewStorage() (*Storage, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return NewStorageWithPath(filepath.Join(home, userConfigDir)), nil
}

// NewStorageWithPath keeps contexts.yaml in dir.
func NewStorageWithPath(dir string) *Storage {
	return &Storage{dir: dir}
}

// Path returns the location of contexts.yaml.
func (s *Storage) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load parses contexts.yaml. A missing file yields an empty Config.
func (s *Storage) Load() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *Storage) load() (*Config, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read contexts file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse contexts file %s: %w", s.Path(), err)
	}
	return &cfg, nil
}

func (s *Storage) save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal contexts: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write contexts file: %w", err)
	}
	return nil
}

// update loads the file, applies fn and saves the result unless fn fails.
func (s *Storage) update(fn func(cfg *Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return s.save(cfg)
}

// Add stores a new context. The name must not be taken.
func (s *Storage) Add(ctx Context) error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	return s.update(func(cfg *Config) error {
		if cfg.Get(ctx.Name) != nil {
			return fmt.Errorf("context %q already exists", ctx.Name)
		}
		cfg.Put(ctx)
		return nil
	})
}

// Update replaces an existing context.
func (s *Storage) Update(ctx Context) error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	return s.update(func(cfg *Config) error {
		if cfg.Get(ctx.Name) == nil {
			return &NotFoundError{Name: ctx.Name}
		}
		cfg.Put(ctx)
		return nil
	})
}

// Delete removes a context.
func (s *Storage) Delete(name string) error {
	return s.update(func(cfg *Config) error {
		if !cfg.Remove(name) {
			return &NotFoundError{Name: name}
		}
		return nil
	})
}

// Rename moves a context to newName, following it with the current context.
func (s *Storage) Rename(oldName, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}
	return s.update(func(cfg *Config) error {
		existing := cfg.Get(oldName)
		if existing == nil {
			return &NotFoundError{Name: oldName}
		}
		if oldName == newName {
			return nil
		}
		if cfg.Get(newName) != nil {
			return fmt.Errorf("context %q already exists", newName)
		}
		existing.Name = newName
		if cfg.CurrentContext == oldName {
			cfg.CurrentContext = newName
		}
		return nil
	})
}

// Use selects the current context.
func (s *Storage) Use(name string) error {
	return s.update(func(cfg *Config) error {
		if cfg.Get(name) == nil {
			return &NotFoundError{Name: name}
		}
		cfg.CurrentContext = name
		return nil
	})
}

// Get returns the named context or nil.
func (s *Storage) Get(name string) (*Context, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Get(name), nil
}

// Names lists context names for shell completion.
func (s *Storage) Names() ([]string, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Names(), nil
}
