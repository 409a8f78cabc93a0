package schema

import "github.com/graphty/schemac/decl"

var operationOrder = []decl.OperationType{
	decl.OperationTypeQuery,
	decl.OperationTypeMutation,
	decl.OperationTypeSubscription,
}

var defaultRootOperationTypes = map[decl.OperationType]string{
	decl.OperationTypeQuery:        "Query",
	decl.OperationTypeMutation:     "Mutation",
	decl.OperationTypeSubscription: "Subscription",
}

// resolveRootOperations adopts the operation-type mapping and directives of
// the schema declaration, or the spec-mandated default names when the document
// has no schema declaration. With multiple schema declarations the last one
// wins, consistent with the provided-types table; the surplus is reported by
// checkSchemaDefinitionCount.
func resolveRootOperations(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	var def *decl.SchemaDefinition
	for _, d := range decls {
		if sd, ok := d.(*decl.SchemaDefinition); ok {
			def = sd
		}
	}

	if def == nil {
		for op, name := range defaultRootOperationTypes {
			s.RootOperationTypes[op] = name
		}
		return nil, nil
	}

	for _, op := range operationOrder {
		if name, ok := def.OperationTypes[op]; ok {
			s.RootOperationTypes[op] = name
		}
	}
	for _, d := range def.Directives {
		s.Directives[d.Name] = d.Arguments
	}
	return nil, nil
}

func checkSchemaDefinitionCount(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	n := 0
	for _, d := range decls {
		if _, ok := d.(*decl.SchemaDefinition); ok {
			n++
		}
	}
	if n > 1 {
		return []*Error{newError("at most one schema definition is allowed")}, nil
	}
	return nil, nil
}

func checkQueryRoot(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	name := s.RootOperationTypes[decl.OperationTypeQuery]
	t, ok := s.Types[name]
	if !ok {
		err := newError("query root operation type must be provided")
		err.TypeName = name
		return []*Error{err}, nil
	}
	if t.Kind != decl.TypeKindObject {
		err := newError("query root operation type must be an Object type: %v", name)
		err.TypeName = name
		return []*Error{err}, nil
	}
	return nil, nil
}
