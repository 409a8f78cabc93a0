package schema

import "github.com/graphty/schemac/decl"

// Compile validates a declaration sequence and assembles the compiled schema.
// Well-formedness violations accumulate on the returned schema's Errors list;
// compilation runs every check regardless of earlier violations. The error
// return is reserved for hard failures that make the remaining checks
// meaningless, currently only an unresolvable field return type.
//
// Schema-extension declarations are not consumed here; apply them to an
// error-free compiled schema with Extend.
func Compile(decls []decl.Declaration) (*Schema, error) {
	s := &Schema{
		Types:              map[string]*Type{},
		RootOperationTypes: map[decl.OperationType]string{},
		Directives:         map[string][]*decl.Argument{},
	}

	indexTypes(decls, s)

	// The object-type and root-operation passes assume the types table is
	// already indexed. Beyond that, each check only appends its own errors.
	for _, check := range []func([]decl.Declaration, *Schema) ([]*Error, error){
		checkUniqueTypeNames,
		checkBuiltinConflicts,
		checkUniqueDirectiveNames,
		checkReservedNames,
		checkObjectTypes,
		resolveRootOperations,
		checkSchemaDefinitionCount,
		checkQueryRoot,
	} {
		errs, err := check(decls, s)
		if err != nil {
			return nil, err
		}
		s.Errors = append(s.Errors, errs...)
	}

	return s, nil
}
