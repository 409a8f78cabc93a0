package schema

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/graphty/schemac/decl"
)

// Only object types are subject to the structural and interface checks. Other
// kinds still go through the uniqueness, conflict, and reserved-name checks.
func checkObjectTypes(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	var ret []*Error
	for _, d := range decls {
		def, ok := d.(*decl.TypeDefinition)
		if !ok || def.Kind != decl.TypeKindObject {
			continue
		}
		errs, err := s.checkObjectType(def)
		if err != nil {
			return nil, err
		}
		ret = append(ret, errs...)
	}
	return ret, nil
}

func (s *Schema) checkObjectType(def *decl.TypeDefinition) ([]*Error, error) {
	var ret []*Error

	if len(def.Fields) == 0 {
		err := newError("%v must have at least one field", def.Name)
		err.TypeName = def.Name
		ret = append(ret, err)
	}

	counts := map[string]int{}
	var duplicated []string
	for _, field := range def.Fields {
		if counts[field.Name] == 1 {
			duplicated = append(duplicated, field.Name)
		}
		counts[field.Name]++
	}
	if len(duplicated) > 0 {
		err := newError("%v field names must be unique: %v", def.Name, strings.Join(duplicated, ", "))
		err.TypeName = def.Name
		err.Duplicates = duplicated
		ret = append(ret, err)
	}

	for _, field := range def.Fields {
		errs, err := s.checkField(def, field)
		if err != nil {
			return nil, err
		}
		ret = append(ret, errs...)
	}

	return append(ret, s.checkObjectInterfaces(def)...), nil
}

func (s *Schema) checkField(def *decl.TypeDefinition, field *decl.FieldDefinition) ([]*Error, error) {
	var ret []*Error

	if strings.HasPrefix(field.Name, "__") {
		err := newError("field names must not begin with \"__\": %v", field.Name)
		err.TypeName = def.Name
		err.FieldName = field.Name
		ret = append(ret, err)
	}

	ref := UnwrapTypeRef(field.Type)
	switch t := s.resolveNamed(ref); {
	case t == nil:
		// An unresolvable field return type aborts compilation outright.
		// Argument types below get a collected error for the same condition.
		return nil, errors.Errorf("field %v must return a known type: %v", field.Name, ref.Name)
	case !t.IsOutputType():
		err := newError("%v cannot be used as a field type", ref.Name)
		err.TypeName = def.Name
		err.FieldName = field.Name
		err.TypeRef = decl.TypeRefString(field.Type)
		ret = append(ret, err)
	}

	for _, arg := range field.Arguments {
		if strings.HasPrefix(arg.Name, "__") {
			err := newError("argument names must not begin with \"__\": %v", arg.Name)
			err.TypeName = def.Name
			err.FieldName = field.Name
			ret = append(ret, err)
		}
		argRef := UnwrapTypeRef(arg.Type)
		switch t := s.resolveNamed(argRef); {
		case t == nil:
			err := newError("argument %v must be a known type: %v", arg.Name, argRef.Name)
			err.TypeName = def.Name
			err.FieldName = field.Name
			err.TypeRef = decl.TypeRefString(arg.Type)
			ret = append(ret, err)
		case !t.IsInputType():
			err := newError("%v cannot be used as an argument type", argRef.Name)
			err.TypeName = def.Name
			err.FieldName = field.Name
			err.TypeRef = decl.TypeRefString(arg.Type)
			ret = append(ret, err)
		}
	}

	return ret, nil
}
