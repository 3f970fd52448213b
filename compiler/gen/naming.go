package gen

import (
	"strconv"
	"sync"

	"github.com/go-openapi/inflect"

	"github.com/syssam/repogen/compiler/load"
)

// implSuffix is appended to the contract's simple name to form the
// generated implementation's name.
const implSuffix = "Impl"

// TargetIdentity identifies the generated implementation type. It is
// derived once per generation run and never changes afterwards.
type TargetIdentity struct {
	// PkgPath is the import path of the package the type is generated into.
	PkgPath string
	// PkgName is the package's local name.
	PkgName string
	// Name is the simple name of the generated type.
	Name string
}

// FQN returns the fully-qualified name of the generated type.
func (t TargetIdentity) FQN() string {
	return t.PkgPath + "." + t.Name
}

// FileName returns the source file name the type is rendered into.
func (t TargetIdentity) FileName() string {
	return inflect.Underscore(t.Name) + ".go"
}

// ConstructorName returns the name of the generated constructor.
func (t TargetIdentity) ConstructorName() string {
	return "New" + t.Name
}

// NameGenerator derives implementation names that are collision-free
// within one generation session. Derivation is a pure function of the
// contract identity plus the session counter: the first derivation for a
// contract yields "<Name>Impl", repeated derivations append a numeric
// discriminator ("<Name>Impl2", ...). Safe for concurrent use.
type NameGenerator struct {
	category string
	mu       sync.Mutex
	seq      map[string]int
}

// NewNameGenerator creates a name generator for the given category tag.
// Counters of distinct categories never interfere.
func NewNameGenerator(category string) *NameGenerator {
	return &NameGenerator{category: category, seq: make(map[string]int)}
}

// TargetIdentity derives the identity of the implementation generated for
// the given contract.
func (g *NameGenerator) TargetIdentity(c *load.Contract) TargetIdentity {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := g.category + ":" + c.FQN()
	g.seq[key]++
	name := c.Name + implSuffix
	if n := g.seq[key]; n > 1 {
		name += strconv.Itoa(n)
	}
	return TargetIdentity{
		PkgPath: c.PkgPath,
		PkgName: c.PkgName,
		Name:    name,
	}
}
