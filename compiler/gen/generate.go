package gen

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/repogen"
	"github.com/syssam/repogen/compiler/load"
)

// DefaultRegistryFile is the registration file name used when no explicit
// registry path is configured.
const DefaultRegistryFile = "repogen.registry"

// Generator runs the repository builder over a set of contracts with
// parallel execution and streaming writes. Each contract gets its own
// builder so a failing contract never poisons another.
type Generator struct {
	cfg   *Config
	names *NameGenerator
}

// NewGenerator creates a generator for the given configuration. Missing
// configuration pieces get working defaults: a declining method function,
// GOMAXPROCS workers, and the default registry file name.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "missing generation config")
	}
	return &Generator{cfg: cfg, names: NewNameGenerator(defaultCategory)}, nil
}

// Generate builds and writes one implementation file per contract, then
// merges the new registrations into the registry file. A failing contract
// fails the run, but sibling contracts finish independently and their
// registrations are still recorded.
func (g *Generator) Generate(ctx context.Context, contracts []*load.Contract) error {
	if len(contracts) == 0 {
		return NewContractError("", "no contracts to generate", nil)
	}

	workers := g.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(workers)

	var (
		mu      sync.Mutex
		entries []repogen.Registration
	)
	for _, c := range contracts {
		errg.Go(func() error {
			reg, err := g.generateOne(c)
			if err != nil {
				return err
			}
			mu.Lock()
			entries = append(entries, reg)
			mu.Unlock()
			return nil
		})
	}
	err := errg.Wait()

	// Contracts that generated successfully already have their files on
	// disk, so their registrations are recorded even when a sibling
	// contract failed. Sorting keeps the content deterministic regardless
	// of completion order.
	if len(entries) > 0 {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Contract < entries[j].Contract
		})
		if werr := g.writeRegistry(entries); werr != nil {
			return errors.Join(err, werr)
		}
	}
	return err
}

// generateOne builds and writes the implementation file for one contract
// and returns its registration.
func (g *Generator) generateOne(c *load.Contract) (repogen.Registration, error) {
	b, err := NewRepositoryBuilder(c, g.names)
	if err != nil {
		return repogen.Registration{}, err
	}
	if g.cfg.Header != "" {
		b.WithHeader(g.cfg.Header)
	}
	b.WithMethodFunc(g.cfg.MethodFunc).
		WithConstructorCustomizer(g.cfg.ConstructorCustomizer).
		WithFileCustomizer(g.cfg.FileCustomizer)

	f, err := b.File()
	if err != nil {
		return repogen.Registration{}, err
	}

	target := b.Metadata().Target()
	dir := g.cfg.Target
	if dir == "" {
		dir = c.Dir
	}
	if err := g.writeFile(f, dir, target.FileName()); err != nil {
		return repogen.Registration{}, NewGenerationError(c.FQN(), "", "writing generated file", err)
	}
	return repogen.Registration{Contract: c.FQN(), Implementation: target.FQN()}, nil
}

// writeFile writes a jennifer file directly to disk (no buffering).
func (g *Generator) writeFile(f *jen.File, dir, filename string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return err
	}
	defer out.Close()
	return f.Render(out)
}

// writeRegistry merges the run's registrations into the registry file.
// Existing entries survive; entries for regenerated contracts are
// replaced.
func (g *Generator) writeRegistry(entries []repogen.Registration) error {
	path := g.registryPath()
	existing, err := readRegistry(path)
	if err != nil {
		return err
	}
	merged := repogen.Merge(existing, entries...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, repogen.FormatRegistry(merged), 0o644)
}

// registryPath resolves the registry file location from the config.
func (g *Generator) registryPath() string {
	if g.cfg.Registry != "" {
		return g.cfg.Registry
	}
	if g.cfg.Target != "" {
		return filepath.Join(g.cfg.Target, DefaultRegistryFile)
	}
	return DefaultRegistryFile
}

// readRegistry parses the registry file, treating a missing file as empty.
func readRegistry(path string) ([]repogen.Registration, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return repogen.ParseRegistry(f)
}

// Generate is a convenience function that loads contracts matching the
// patterns and generates implementations for them in one call.
func Generate(ctx context.Context, patterns []string, opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	contracts, err := (&load.Config{Patterns: patterns}).Load()
	if err != nil {
		return err
	}
	g, err := NewGenerator(cfg)
	if err != nil {
		return err
	}
	return g.Generate(ctx, contracts)
}
