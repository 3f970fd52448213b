package gen

import "github.com/syssam/repogen/compiler/load"

// FieldDescriptor describes a single field of the generated type.
type FieldDescriptor struct {
	Name    string
	Type    *load.TypeInfo
	Comment string
}

// Metadata tracks the target type's identity and the fields collected
// while generating the constructor and methods. It is scoped to one
// generation run and is not safe for concurrent use.
type Metadata struct {
	target TargetIdentity
	fields map[string]*FieldDescriptor
	order  []string
}

// NewMetadata creates an empty metadata store for the given target.
func NewMetadata(target TargetIdentity) *Metadata {
	return &Metadata{
		target: target,
		fields: make(map[string]*FieldDescriptor),
	}
}

// Target returns the identity of the generated type.
func (m *Metadata) Target() TargetIdentity {
	return m.target
}

// AddField inserts or overwrites the field entry under the given name.
// A second write to the same name wins and keeps the field's original
// position; independent callers re-declaring a field they need is allowed.
func (m *Metadata) AddField(name string, typ *load.TypeInfo) {
	m.AddFieldDescriptor(&FieldDescriptor{Name: name, Type: typ})
}

// AddFieldDescriptor inserts or overwrites a full field descriptor.
func (m *Metadata) AddFieldDescriptor(fd *FieldDescriptor) {
	if _, ok := m.fields[fd.Name]; !ok {
		m.order = append(m.order, fd.Name)
	}
	m.fields[fd.Name] = fd
}

// FieldNameOf returns the name of a previously added field whose type
// matches the given one, ignoring pointer indirection. Callers use it to
// opt into dedupe before adding a field of their own. The scan is linear;
// field counts are small.
func (m *Metadata) FieldNameOf(typ *load.TypeInfo) (string, bool) {
	for _, name := range m.order {
		if m.fields[name].Type.EqualBase(typ) {
			return name, true
		}
	}
	return "", false
}

// HasField reports whether a field with the given name exists.
func (m *Metadata) HasField(name string) bool {
	_, ok := m.fields[name]
	return ok
}

// Fields returns the collected fields in insertion order.
func (m *Metadata) Fields() []*FieldDescriptor {
	out := make([]*FieldDescriptor, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.fields[name])
	}
	return out
}

// Len returns the number of distinct fields.
func (m *Metadata) Len() int {
	return len(m.fields)
}
