package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/repogen/compiler/load"
)

// MethodContext bundles everything a MethodFunc needs to generate one
// method: the method under consideration, the owning contract and the
// shared metadata store (so generated code can discover or add fields).
// It lives for exactly one method's generation step.
type MethodContext struct {
	Method   *load.Method
	Contract *Contract
	Metadata *Metadata
}

// MethodFunc produces a method builder for the given context, or declines
// by returning (nil, nil). Declining is not an error: the method is simply
// omitted from the generated type.
type MethodFunc func(*MethodContext) (*MethodBuilder, error)

// MethodMetadata exposes the signature classification of the method under
// generation to customization hooks.
type MethodMetadata struct {
	method *load.Method
}

// Name returns the method name.
func (m *MethodMetadata) Name() string {
	return m.method.Name
}

// Signature returns the method signature for diagnostics.
func (m *MethodMetadata) Signature() string {
	return m.method.Signature()
}

// ReturnsVoid reports whether the method has no results. Hooks must check
// this themselves: the builder never synthesizes a default return.
func (m *MethodMetadata) ReturnsVoid() bool {
	return len(m.method.Results) == 0
}

// ReturnsError reports whether the method's last result is an error.
func (m *MethodMetadata) ReturnsError() bool {
	if len(m.method.Results) == 0 {
		return false
	}
	last := m.method.Results[len(m.method.Results)-1]
	return last.Ident == "error" && last.PkgPath == "" && !last.Slice && !last.Pointer
}

// Results returns the declared result types in order.
func (m *MethodMetadata) Results() []*load.TypeInfo {
	return m.method.Results
}

// Body is the mutable statement list of a generated method body.
type Body struct {
	stmts []jen.Code
}

// Add appends statements to the body.
func (b *Body) Add(code ...jen.Code) {
	b.stmts = append(b.stmts, code...)
}

// Reset discards all statements, letting a hook replace the body entirely.
func (b *Body) Reset() {
	b.stmts = nil
}

// Len returns the number of statements.
func (b *Body) Len() int {
	return len(b.stmts)
}

// Customizer edits a method body after the primary generation function has
// produced its base statements.
type Customizer func(*Contract, *MethodMetadata, *Body)

// MethodBuilder assembles a single generated method. The generation
// function fills the body; one customizer may then decorate it before the
// builder finalizes the method.
type MethodBuilder struct {
	ctx        *MethodContext
	meta       *MethodMetadata
	body       *Body
	customizer Customizer
}

// NewMethodBuilder creates a builder with an empty body for the context's
// method.
func NewMethodBuilder(ctx *MethodContext) *MethodBuilder {
	return &MethodBuilder{
		ctx:  ctx,
		meta: &MethodMetadata{method: ctx.Method},
		body: &Body{},
	}
}

// Body returns the mutable body for the primary generation function.
func (b *MethodBuilder) Body() *Body {
	return b.body
}

// Customize registers the customization hook. It is applied exactly once,
// when the method is built; registering again replaces the hook.
func (b *MethodBuilder) Customize(fn Customizer) *MethodBuilder {
	b.customizer = fn
	return b
}

// Build applies the customizer and finalizes the method. A panicking hook
// propagates here; RepositoryBuilder recovers it and reports a
// CustomizationError.
func (b *MethodBuilder) Build() jen.Code {
	if b.customizer != nil {
		b.customizer(b.ctx.Contract, b.meta, b.body)
	}
	m := b.ctx.Method
	stmt := jen.Empty()
	if m.Doc != "" {
		stmt = stmt.Comment(m.Doc).Line()
	}
	return stmt.Func().
		Params(jen.Id("r").Op("*").Id(b.ctx.Metadata.Target().Name)).
		Id(m.Name).
		ParamsFunc(func(g *jen.Group) {
			for _, p := range m.Params {
				g.Id(p.Name).Add(qualType(p.Type))
			}
		}).
		ParamsFunc(func(g *jen.Group) {
			for _, r := range m.Results {
				g.Add(qualType(r))
			}
		}).
		Block(b.body.stmts...)
}

// StubMethodFunc accepts every derived method with an empty body. Pair it
// with ZeroReturnCustomizer to obtain compilable placeholder bodies.
func StubMethodFunc(ctx *MethodContext) (*MethodBuilder, error) {
	return NewMethodBuilder(ctx), nil
}

// DefaultMethodFunc accepts every derived method with a compilable
// placeholder body returning zero values.
func DefaultMethodFunc(ctx *MethodContext) (*MethodBuilder, error) {
	return NewMethodBuilder(ctx).Customize(ZeroReturnCustomizer), nil
}

// ZeroReturnCustomizer appends a return of zero values to non-void
// methods and leaves void methods untouched.
func ZeroReturnCustomizer(_ *Contract, m *MethodMetadata, b *Body) {
	if m.ReturnsVoid() {
		return
	}
	vals := make([]jen.Code, len(m.Results()))
	for i, r := range m.Results() {
		vals[i] = zeroValue(r)
	}
	b.Add(jen.Return(vals...))
}
