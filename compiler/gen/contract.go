package gen

import "github.com/syssam/repogen/compiler/load"

// Contract wraps a loaded contract with the classification predicates the
// repository builder consults. It is a read-only view; the builder never
// mutates the loaded model.
type Contract struct {
	*load.Contract
}

// IsBaseMethod reports whether the method is assumed to originate from the
// base repository contract. The embedded-origin signal misclassifies
// methods of contracts that embed non-base interfaces, so the builder
// always consults the crudMethods table first; this predicate only runs as
// a fallback.
func (c *Contract) IsBaseMethod(m *load.Method) bool {
	return m.Embedded
}

// IsCustomMethod reports whether the user supplies the implementation of
// the method elsewhere.
func (c *Contract) IsCustomMethod(m *load.Method) bool {
	return m.Custom
}

// crudMethods mirrors the declared method set of repogen.Repository,
// keyed by name with the expected parameter count (context included).
// Matching against this table is authoritative and takes precedence over
// the IsBaseMethod predicate.
var crudMethods = map[string]int{
	"Find":    2,
	"FindAll": 1,
	"Save":    2,
	"Delete":  2,
	"Count":   1,
	"Exists":  2,
}

// isCRUDMethod matches a method against the base contract's declared
// methods by name and parameter shape.
func isCRUDMethod(m *load.Method) bool {
	arity, ok := crudMethods[m.Name]
	if !ok || len(m.Params) != arity {
		return false
	}
	ctx := m.Params[0].Type
	return ctx != nil && ctx.PkgPath == "context" && ctx.Ident == "Context"
}
