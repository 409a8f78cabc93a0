package schema

import "github.com/graphty/schemac/decl"

// isSubTypeOf reports whether t may appear where super is declared, per the
// covariance rules for interface implementation: equal named types, an object
// among an interface or union's possible types, or lists of sub-types. The
// relation has no case for non-null wrappers; the governing specification
// leaves that interaction undefined, so a non-null on either side falls
// through to failure.
func (s *Schema) isSubTypeOf(t, super decl.TypeRef) bool {
	if named, ok := t.(*decl.NamedType); ok {
		superNamed, ok := super.(*decl.NamedType)
		if !ok {
			return false
		}
		tt := s.NamedType(named.Name)
		st := s.NamedType(superNamed.Name)
		if tt == nil || st == nil {
			return false
		}
		if tt == st {
			return true
		}
		if tt.Kind != decl.TypeKindObject {
			return false
		}
		switch st.Kind {
		case decl.TypeKindInterface:
			for _, name := range tt.Decl.Interfaces {
				if name == st.Name {
					return true
				}
			}
		case decl.TypeKindUnion:
			for _, name := range st.Decl.Types {
				if name == tt.Name {
					return true
				}
			}
		}
		return false
	}
	if list, ok := t.(*decl.ListType); ok {
		if superList, ok := super.(*decl.ListType); ok {
			return s.isSubTypeOf(list.Type, superList.Type)
		}
	}
	return false
}
