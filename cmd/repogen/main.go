// repogen generates repository implementations for contract interfaces.
// Run: go run github.com/syssam/repogen/cmd/repogen -pattern ./...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/syssam/repogen/compiler/gen"
	"github.com/syssam/repogen/compiler/load"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a repogen.yaml config file")
		patterns   sliceFlag
		names      sliceFlag
		target     = flag.String("target", "", "output directory (defaults to each contract's package)")
		registry   = flag.String("registry", "", "registration file path")
		header     = flag.String("header", "", "header comment for generated files")
		workers    = flag.Int("workers", 0, "number of parallel workers (0 = GOMAXPROCS)")
		watch      = flag.Bool("watch", false, "watch contract packages and regenerate on change")
	)
	flag.Var(&patterns, "pattern", "package pattern to scan for contracts (repeatable)")
	flag.Var(&names, "name", "generate only the named contracts (repeatable)")
	flag.Parse()

	cfg, err := loadFileConfig(*configPath)
	if err != nil {
		fail(err)
	}
	cfg.merge(fileConfig{
		Patterns: patterns,
		Names:    names,
		Target:   *target,
		Registry: *registry,
		Header:   *header,
		Workers:  *workers,
	})
	if len(cfg.Patterns) == 0 {
		fmt.Fprintln(os.Stderr, "repogen: no package patterns given; use -pattern or a config file")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), cfg); err != nil {
		fail(err)
	}
	if *watch {
		if err := watchAndRun(context.Background(), cfg); err != nil {
			fail(err)
		}
	}
}

// run loads the configured contracts and generates implementations for them.
func run(ctx context.Context, cfg *fileConfig) error {
	contracts, err := (&load.Config{
		Patterns: cfg.Patterns,
		Names:    cfg.Names,
	}).Load()
	if err != nil {
		return err
	}

	opts := []gen.Option{
		gen.WithMethodFunc(gen.DefaultMethodFunc),
	}
	if cfg.Target != "" {
		opts = append(opts, gen.WithTarget(cfg.Target))
	}
	if cfg.Registry != "" {
		opts = append(opts, gen.WithRegistry(cfg.Registry))
	}
	if cfg.Header != "" {
		opts = append(opts, gen.WithHeader(cfg.Header))
	}
	if cfg.Workers > 0 {
		opts = append(opts, gen.WithWorkers(cfg.Workers))
	}
	genCfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	g, err := gen.NewGenerator(genCfg)
	if err != nil {
		return err
	}
	if err := g.Generate(ctx, contracts); err != nil {
		return err
	}
	fmt.Printf("repogen: generated %d repositories\n", len(contracts))
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "repogen: %v\n", err)
	os.Exit(1)
}

// sliceFlag collects repeated string flags.
type sliceFlag []string

func (f *sliceFlag) String() string { return strings.Join(*f, ",") }

func (f *sliceFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}
