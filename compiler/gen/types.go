package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/repogen/compiler/load"
)

// uuidPkg is the import path of the uuid package, which gets a dedicated
// zero value (uuid.Nil instead of a composite literal).
const uuidPkg = "github.com/google/uuid"

// qualType returns the Jennifer code for a loaded type.
func qualType(t *load.TypeInfo) jen.Code {
	if t == nil {
		return jen.Any()
	}
	stmt := jen.Empty()
	if t.Slice {
		stmt = stmt.Index()
	}
	if t.Pointer {
		stmt = stmt.Op("*")
	}
	if t.PkgPath != "" {
		return stmt.Qual(t.PkgPath, t.Ident)
	}
	switch t.Ident {
	case "any":
		return stmt.Any()
	case "error":
		return stmt.Error()
	default:
		return stmt.Id(t.Ident)
	}
}

// zeroValue returns the Jennifer code for a type's zero value. Pointers,
// slices, errors and interfaces zero to nil; named types outside the known
// set fall back to a composite literal.
func zeroValue(t *load.TypeInfo) jen.Code {
	if t == nil {
		return jen.Nil()
	}
	if t.Pointer || t.Slice {
		return jen.Nil()
	}
	switch {
	case t.PkgPath == uuidPkg && t.Ident == "UUID":
		return jen.Qual(uuidPkg, "Nil")
	case t.PkgPath == "time" && t.Ident == "Time":
		return jen.Qual("time", "Time").Values()
	case t.PkgPath != "":
		return jen.Qual(t.PkgPath, t.Ident).Values()
	}
	switch t.Ident {
	case "string":
		return jen.Lit("")
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "byte", "rune":
		return jen.Lit(0)
	case "bool":
		return jen.False()
	case "error", "any":
		return jen.Nil()
	default:
		return jen.Id(t.Ident).Values()
	}
}
