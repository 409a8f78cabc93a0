package schema

import "github.com/graphty/schemac/decl"

var IntType = &Type{
	Name:    "Int",
	Kind:    decl.TypeKindScalar,
	Builtin: true,
}

var FloatType = &Type{
	Name:    "Float",
	Kind:    decl.TypeKindScalar,
	Builtin: true,
}

var StringType = &Type{
	Name:    "String",
	Kind:    decl.TypeKindScalar,
	Builtin: true,
}

var BooleanType = &Type{
	Name:    "Boolean",
	Kind:    decl.TypeKindScalar,
	Builtin: true,
}

var IDType = &Type{
	Name:    "ID",
	Kind:    decl.TypeKindScalar,
	Builtin: true,
}

var builtins = map[string]*Type{
	"Int":     IntType,
	"Float":   FloatType,
	"String":  StringType,
	"Boolean": BooleanType,
	"ID":      IDType,
}

// BuiltinTypes returns the built-in scalar table. Callers must treat it as
// read-only.
func BuiltinTypes() map[string]*Type {
	return builtins
}
