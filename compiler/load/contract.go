// Package load reads data-access contracts from user packages and turns
// them into a serializable model consumed by compiler/gen.
//
// A contract is an exported interface that embeds repogen.Repository. Its
// explicit methods are candidates for code generation unless annotated:
//
//	//repogen:custom    the user ships the implementation elsewhere
//	//repogen:provided  the method is already implemented and must be skipped
package load

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Contract represents an interface that was loaded from a user package.
type Contract struct {
	Name    string    `json:"name,omitempty"`
	PkgPath string    `json:"pkg_path,omitempty"`
	PkgName string    `json:"pkg_name,omitempty"`
	Dir     string    `json:"-"`
	Pos     string    `json:"-"`
	Methods []*Method `json:"methods,omitempty"`
}

// Method represents a single method of a loaded contract.
type Method struct {
	Name string `json:"name,omitempty"`
	// Params holds the declared parameters in order.
	Params []*Param `json:"params,omitempty"`
	// Results holds the declared result types in order.
	Results []*TypeInfo `json:"results,omitempty"`
	// Embedded indicates the method was contributed by an embedded
	// interface rather than declared on the contract itself.
	Embedded bool `json:"embedded,omitempty"`
	// Custom indicates the user supplies the implementation elsewhere.
	Custom bool `json:"custom,omitempty"`
	// Provided indicates the method is already implemented and must not
	// be generated.
	Provided bool   `json:"provided,omitempty"`
	Doc      string `json:"doc,omitempty"`
	Pos      string `json:"-"`
}

// Param is a named method parameter.
type Param struct {
	Name string    `json:"name,omitempty"`
	Type *TypeInfo `json:"type,omitempty"`
}

// TypeInfo describes a Go type by package path and identifier. Builtin
// types have an empty PkgPath.
type TypeInfo struct {
	Ident   string `json:"ident,omitempty"`
	PkgPath string `json:"pkg_path,omitempty"`
	Pointer bool   `json:"pointer,omitempty"`
	Slice   bool   `json:"slice,omitempty"`
}

// String returns the Go syntax for the type.
func (t *TypeInfo) String() string {
	var b strings.Builder
	if t.Slice {
		b.WriteString("[]")
	}
	if t.Pointer {
		b.WriteString("*")
	}
	if t.PkgPath != "" {
		b.WriteString(pkgName(t.PkgPath))
		b.WriteString(".")
	}
	b.WriteString(t.Ident)
	return b.String()
}

// Equal reports whether both types are structurally identical.
func (t *TypeInfo) Equal(o *TypeInfo) bool {
	if t == nil || o == nil {
		return t == o
	}
	return *t == *o
}

// EqualBase reports whether both types name the same underlying type,
// ignoring pointer indirection. Used by the generator's field store for
// dedupe-by-type lookups.
func (t *TypeInfo) EqualBase(o *TypeInfo) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Ident == o.Ident && t.PkgPath == o.PkgPath && t.Slice == o.Slice
}

// FQN returns the fully-qualified name of the contract.
func (c *Contract) FQN() string {
	return c.PkgPath + "." + c.Name
}

// MethodByName returns the method with the given name, or nil.
func (c *Contract) MethodByName(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Signature returns a human-readable signature used in diagnostics.
func (m *Method) Signature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteString("(")
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Name != "" {
			b.WriteString(p.Name)
			b.WriteString(" ")
		}
		b.WriteString(p.Type.String())
	}
	b.WriteString(")")
	switch len(m.Results) {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(m.Results[0].String())
	default:
		parts := make([]string, len(m.Results))
		for i, r := range m.Results {
			parts[i] = r.String()
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	return b.String()
}

// MarshalContract encodes a contract so it can be cached or transported
// between build steps.
func MarshalContract(c *Contract) ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalContract decodes the given buffer into a loaded contract.
func UnmarshalContract(buf []byte) (*Contract, error) {
	c := &Contract{}
	if err := json.Unmarshal(buf, c); err != nil {
		return nil, err
	}
	return c, nil
}

// pkgName returns the presumed package name for an import path.
func pkgName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
