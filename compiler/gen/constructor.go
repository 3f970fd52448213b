package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/repogen/compiler/load"
)

// ConstructorBuilder assembles the generated type's constructor. With no
// customization it yields a no-argument constructor returning a pointer to
// the zero value. Customizers add parameters for the dependencies the
// generated type needs; every parameter is assigned to the struct field of
// the same name, and keeping a matching field in the metadata store is the
// customizer's responsibility (the builder does not validate it).
type ConstructorBuilder struct {
	contract *Contract
	metadata *Metadata
	params   []*load.Param
}

// NewConstructorBuilder creates a constructor builder for the contract.
func NewConstructorBuilder(contract *Contract, metadata *Metadata) *ConstructorBuilder {
	return &ConstructorBuilder{contract: contract, metadata: metadata}
}

// Metadata returns the generation metadata store, letting customizers add
// the fields that back their parameters.
func (b *ConstructorBuilder) Metadata() *Metadata {
	return b.metadata
}

// AddParameter appends a constructor parameter assigned to the field of
// the same name.
func (b *ConstructorBuilder) AddParameter(name string, typ *load.TypeInfo) *ConstructorBuilder {
	b.params = append(b.params, &load.Param{Name: name, Type: typ})
	return b
}

// Params returns the parameters added so far.
func (b *ConstructorBuilder) Params() []*load.Param {
	return b.params
}

// Build finalizes the constructor.
func (b *ConstructorBuilder) Build() jen.Code {
	target := b.metadata.Target()
	return jen.Commentf("%s creates a new %s.", target.ConstructorName(), target.Name).Line().
		Func().Id(target.ConstructorName()).
		ParamsFunc(func(g *jen.Group) {
			for _, p := range b.params {
				g.Id(p.Name).Add(qualType(p.Type))
			}
		}).
		Op("*").Id(target.Name).
		Block(jen.Return(jen.Op("&").Id(target.Name).Values(jen.DictFunc(func(d jen.Dict) {
			for _, p := range b.params {
				d[jen.Id(p.Name)] = jen.Id(p.Name)
			}
		}))))
}
