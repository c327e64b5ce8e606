package context

import (
	"fmt"
	"regexp"
)

// EnvVar overrides the current context for a single invocation.
const EnvVar = "MONOLITH_CONTEXT"

const maxNameLength = 63

var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Transports a context may name. An empty transport means streamable-http.
var Transports = []string{"streamable-http", "sse"}

// Settings are per-context defaults for client commands.
type Settings struct {
	// Output is the default output format (console, json, yaml, table).
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Context is a named monolith server endpoint.
type Context struct {
	Name      string    `yaml:"name" json:"name"`
	Endpoint  string    `yaml:"endpoint" json:"endpoint"`
	Transport string    `yaml:"transport,omitempty" json:"transport,omitempty"`
	Settings  *Settings `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Config is the root of contexts.yaml.
type Config struct {
	CurrentContext string    `yaml:"current-context,omitempty"`
	Contexts       []Context `yaml:"contexts,omitempty"`
}

// NotFoundError reports a context name that is not defined.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("context %q not found", e.Name)
}

// ValidateName checks that name is 1-63 lowercase alphanumerics or hyphens,
// starting and ending with an alphanumeric.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("context name cannot be empty")
	case len(name) > maxNameLength:
		return fmt.Errorf("context name cannot exceed %d characters", maxNameLength)
	case !namePattern.MatchString(name):
		return fmt.Errorf("context name %q must contain only lowercase letters, numbers, and hyphens, and must start and end with an alphanumeric character", name)
	}
	return nil
}

// Validate checks the fields of c.
func (c Context) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if c.Transport != "" && !validTransport(c.Transport) {
		return fmt.Errorf("unsupported transport %q (supported: %v)", c.Transport, Transports)
	}
	return nil
}

func validTransport(t string) bool {
	for _, known := range Transports {
		if t == known {
			return true
		}
	}
	return false
}

// Get returns the named context or nil.
func (c *Config) Get(name string) *Context {
	for i := range c.Contexts {
		if c.Contexts[i].Name == name {
			return &c.Contexts[i]
		}
	}
	return nil
}

// Current returns the current context or nil when none is selected.
func (c *Config) Current() *Context {
	if c.CurrentContext == "" {
		return nil
	}
	return c.Get(c.CurrentContext)
}

// Put adds ctx or replaces the context with the same name.
func (c *Config) Put(ctx Context) {
	if existing := c.Get(ctx.Name); existing != nil {
		*existing = ctx
		return
	}
	c.Contexts = append(c.Contexts, ctx)
}

// Remove deletes the named context and clears the current context if it was
// the one removed. It reports whether the context existed.
func (c *Config) Remove(name string) bool {
	for i := range c.Contexts {
		if c.Contexts[i].Name != name {
			continue
		}
		c.Contexts = append(c.Contexts[:i], c.Contexts[i+1:]...)
		if c.CurrentContext == name {
			c.CurrentContext = ""
		}
		return true
	}
	return false
}

// Names lists the context names in file order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Contexts))
	for i, ctx := range c.Contexts {
		names[i] = ctx.Name
	}
	return names
}
