package decl

// NamedType, ListType, or NonNullType
type TypeRef interface{}

type NamedType struct {
	Name string
}

type ListType struct {
	Type TypeRef
}

type NonNullType struct {
	Type TypeRef
}

func NewListType(t TypeRef) *ListType {
	return &ListType{
		Type: t,
	}
}

func NewNonNullType(t TypeRef) *NonNullType {
	return &NonNullType{
		Type: t,
	}
}

// TypeRefString renders a type reference in SDL notation, e.g. "[Int!]".
func TypeRefString(t TypeRef) string {
	switch t := t.(type) {
	case *NamedType:
		return t.Name
	case *ListType:
		return "[" + TypeRefString(t.Type) + "]"
	case *NonNullType:
		return TypeRefString(t.Type) + "!"
	default:
		return ""
	}
}
