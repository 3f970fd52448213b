package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/repogen/compiler/load"
)

// ConstructorCustomizer adds parameters (and their backing fields) to the
// generated constructor before it is finalized.
type ConstructorCustomizer func(*ConstructorBuilder)

// FileCustomizer edits the finished file after all methods and fields have
// been assembled. It has full visibility into the method and field set.
type FileCustomizer func(*Contract, *Metadata, *jen.File)

// defaultCategory tags the name-generator counters of builders created
// without an explicit session.
const defaultCategory = "repo"

// defaultHeader is the header comment of generated files.
const defaultHeader = "Code generated by repogen. DO NOT EDIT."

// RepositoryBuilder drives the generation of one implementation type for
// one contract. It owns the metadata store and the in-progress type for
// the duration of the run and must not be shared across runs.
type RepositoryBuilder struct {
	contract *Contract
	metadata *Metadata
	header   string

	constructorCustomizer ConstructorCustomizer
	methodFunc            MethodFunc
	fileCustomizer        FileCustomizer
}

// NewRepositoryBuilder creates a builder for the given contract. The
// target identity is derived once, here; all later naming flows from it.
// Malformed contract information fails fast before any generation step.
func NewRepositoryBuilder(contract *load.Contract, names *NameGenerator) (*RepositoryBuilder, error) {
	if contract == nil {
		return nil, NewConfigError("Contract", nil, "missing contract information")
	}
	if contract.Name == "" || contract.PkgPath == "" {
		return nil, NewConfigError("Contract", contract.Name, "contract has no interface identity")
	}
	if names == nil {
		names = NewNameGenerator(defaultCategory)
	}
	return &RepositoryBuilder{
		contract: &Contract{Contract: contract},
		metadata: NewMetadata(names.TargetIdentity(contract)),
		header:   defaultHeader,
	}, nil
}

// WithHeader overrides the generated file's header comment.
func (b *RepositoryBuilder) WithHeader(header string) *RepositoryBuilder {
	if header != "" {
		b.header = header
	}
	return b
}

// WithConstructorCustomizer sets the constructor customization hook.
func (b *RepositoryBuilder) WithConstructorCustomizer(fn ConstructorCustomizer) *RepositoryBuilder {
	b.constructorCustomizer = fn
	return b
}

// WithMethodFunc sets the generation function invoked for every derived
// method. Without one, every derived method is declined.
func (b *RepositoryBuilder) WithMethodFunc(fn MethodFunc) *RepositoryBuilder {
	b.methodFunc = fn
	return b
}

// WithFileCustomizer sets the whole-file customization hook, applied last.
func (b *RepositoryBuilder) WithFileCustomizer(fn FileCustomizer) *RepositoryBuilder {
	b.fileCustomizer = fn
	return b
}

// Metadata returns the generation metadata store.
func (b *RepositoryBuilder) Metadata() *Metadata {
	return b.metadata
}

// File assembles the compilation unit for the contract. Generation is
// all-or-nothing: a failing method aborts the run and no partial file is
// returned.
func (b *RepositoryBuilder) File() (*jen.File, error) {
	target := b.metadata.Target()
	// NewFilePathName keeps references to the contract's own package
	// unqualified in the emitted file.
	f := jen.NewFilePathName(target.PkgPath, target.PkgName)
	f.HeaderComment(b.header)

	// The constructor customizer runs before method generation so the
	// fields backing its parameters are in the store from the start.
	cb := NewConstructorBuilder(b.contract, b.metadata)
	if b.constructorCustomizer != nil {
		if err := b.runHook("constructor", func() { b.constructorCustomizer(cb) }); err != nil {
			return nil, err
		}
	}

	var methods []jen.Code
	for _, m := range b.contract.Methods {
		if isCRUDMethod(m) {
			// The direct match against the base contract's method set is
			// authoritative and runs before the IsBaseMethod predicate,
			// which misses some embedded overloads.
			continue
		}
		if b.contract.IsCustomMethod(m) || m.Provided || b.contract.IsBaseMethod(m) {
			continue
		}
		code, err := b.buildMethod(m)
		if err != nil {
			return nil, err
		}
		if code != nil {
			methods = append(methods, code)
		}
	}

	// Fields are emitted after every method ran so the struct captures
	// fields that methods requested lazily.
	f.Commentf("%s is the generated repository implementation of %s.", target.Name, b.contract.Name)
	f.Type().Id(target.Name).StructFunc(func(g *jen.Group) {
		for _, fd := range b.metadata.Fields() {
			if fd.Comment != "" {
				g.Comment(fd.Comment)
			}
			g.Id(fd.Name).Add(qualType(fd.Type))
		}
	})

	f.Add(cb.Build())
	for _, m := range methods {
		f.Add(m)
	}

	if b.fileCustomizer != nil {
		if err := b.runHook("file", func() { b.fileCustomizer(b.contract, b.metadata, f) }); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// buildMethod generates one derived method, returning nil when the
// generation function declines.
func (b *RepositoryBuilder) buildMethod(m *load.Method) (jen.Code, error) {
	if b.methodFunc == nil {
		return nil, nil
	}
	ctx := &MethodContext{Method: m, Contract: b.contract, Metadata: b.metadata}
	mb, err := b.methodFunc(ctx)
	if err != nil {
		return nil, NewGenerationError(b.contract.FQN(), m.Signature(), "method generation failed", err)
	}
	if mb == nil {
		return nil, nil
	}
	var code jen.Code
	// Build applies the method's customization hook.
	if err := b.runHook("method", func() { code = mb.Build() }); err != nil {
		return nil, err
	}
	return code, nil
}

// runHook invokes a customization hook, converting a panic into a
// CustomizationError so a misbehaving hook cannot take down the caller.
func (b *RepositoryBuilder) runHook(hook string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CustomizationError{
				Contract: b.contract.FQN(),
				Hook:     hook,
				Cause:    fmt.Errorf("%v", r),
			}
		}
	}()
	fn()
	return nil
}
