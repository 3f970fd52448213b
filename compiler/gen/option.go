package gen

import "errors"

// Config holds the generation settings shared by every contract of a run.
type Config struct {
	// Target is the output directory for generated files. When empty,
	// each file is written next to its contract's source package.
	Target string

	// Header is the comment placed at the top of each generated file.
	Header string

	// Registry is the path of the registration file. When empty, it
	// defaults to "repogen.registry" under Target (or the working
	// directory when Target is also empty).
	Registry string

	// Workers bounds how many contracts are generated concurrently.
	// Zero or negative means one worker per contract.
	Workers int

	// MethodFunc produces implementations for derived methods.
	MethodFunc MethodFunc

	// ConstructorCustomizer decorates the generated constructor.
	ConstructorCustomizer ConstructorCustomizer

	// FileCustomizer decorates each finished file.
	FileCustomizer FileCustomizer
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithRegistry sets the registration file path.
func WithRegistry(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Registry", nil, "registry path cannot be empty")
		}
		c.Registry = path
		return nil
	}
}

// WithWorkers bounds the number of contracts generated concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "worker count cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithMethodFunc sets the generation function for derived methods.
func WithMethodFunc(fn MethodFunc) Option {
	return func(c *Config) error {
		if fn == nil {
			return NewConfigError("MethodFunc", nil, "method function cannot be nil")
		}
		c.MethodFunc = fn
		return nil
	}
}

// WithConstructorCustomizer sets the constructor customization hook.
func WithConstructorCustomizer(fn ConstructorCustomizer) Option {
	return func(c *Config) error {
		c.ConstructorCustomizer = fn
		return nil
	}
}

// WithFileCustomizer sets the whole-file customization hook.
func WithFileCustomizer(fn FileCustomizer) Option {
	return func(c *Config) error {
		c.FileCustomizer = fn
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
