package schema

import (
	"fmt"

	"github.com/graphty/schemac/decl"
)

// UnwrapTypeRef strips list and non-null wrappers off a type reference and
// returns the innermost named reference. A reference that does not bottom out
// at a named type is a bug in the caller, not a schema error, and panics.
func UnwrapTypeRef(t decl.TypeRef) *decl.NamedType {
	for {
		switch ref := t.(type) {
		case *decl.NamedType:
			return ref
		case *decl.ListType:
			t = ref.Type
		case *decl.NonNullType:
			t = ref.Type
		default:
			panic(fmt.Sprintf("schema: malformed type reference: %T", t))
		}
	}
}

// resolveNamed looks a named reference up in the built-in table, then the
// provided-types table. It returns nil for an unknown name; reporting that is
// the calling check's job. Passing anything but a non-empty named reference is
// a contract violation and panics.
func (s *Schema) resolveNamed(ref *decl.NamedType) *Type {
	if ref == nil || ref.Name == "" {
		panic("schema: resolveNamed requires a non-empty named type reference")
	}
	return s.NamedType(ref.Name)
}
