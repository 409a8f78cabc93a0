package schema

import "github.com/graphty/schemac/decl"

// indexTypes builds the provided-types table. Duplicate names overwrite: the
// table always reflects the last declaration seen per name, and the duplication
// itself is reported by checkUniqueTypeNames.
func indexTypes(decls []decl.Declaration, s *Schema) {
	for _, d := range decls {
		if def, ok := d.(*decl.TypeDefinition); ok {
			s.Types[def.Name] = newType(def)
		}
	}
}

func newType(def *decl.TypeDefinition) *Type {
	fields := make(map[string]*decl.FieldDefinition, len(def.Fields))
	for _, field := range def.Fields {
		fields[field.Name] = field
	}
	return &Type{
		Name:   def.Name,
		Kind:   def.Kind,
		Decl:   def,
		Fields: fields,
	}
}
