package schema

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/graphty/schemac/decl"
)

// Extend derives a new schema from s by applying the given schema extensions
// in order. Extensions are strictly additive: a directive already applied to
// the schema or an already-defined root operation type is a violation, and the
// overlapping extension is not merged. Violations accumulate on the returned
// schema's Errors list just like compilation errors.
//
// Extension is defined only on a well-formed base: passing a schema that
// already has errors is a contract violation and returns a non-nil error.
func Extend(s *Schema, exts []*decl.SchemaExtension) (*Schema, error) {
	if s.HasErrors() {
		return nil, errors.New("cannot extend a schema that has errors")
	}

	ret := s.clone()
	for _, ext := range exts {
		if len(ext.Directives) > 0 {
			var conflicts []string
			for _, d := range ext.Directives {
				if _, ok := ret.Directives[d.Name]; ok {
					conflicts = append(conflicts, d.Name)
				}
			}
			if len(conflicts) > 0 {
				err := newError("extension directives must not already apply to the original schema: %v", strings.Join(conflicts, ", "))
				err.Conflicts = conflicts
				ret.Errors = append(ret.Errors, err)
			} else {
				for _, d := range ext.Directives {
					ret.Directives[d.Name] = d.Arguments
				}
			}
		}

		if len(ext.OperationTypes) > 0 {
			var conflicts []string
			for _, op := range operationOrder {
				if _, ok := ext.OperationTypes[op]; !ok {
					continue
				}
				if _, ok := ret.RootOperationTypes[op]; ok {
					conflicts = append(conflicts, string(op))
				}
			}
			if len(conflicts) > 0 {
				err := newError("extension attempting to add root operation types that already exist: %v", strings.Join(conflicts, ", "))
				err.Conflicts = conflicts
				ret.Errors = append(ret.Errors, err)
			} else {
				for _, op := range operationOrder {
					if name, ok := ext.OperationTypes[op]; ok {
						ret.RootOperationTypes[op] = name
					}
				}
			}
		}
	}

	return ret, nil
}

func (s *Schema) clone() *Schema {
	ret := &Schema{
		Errors:             append([]*Error(nil), s.Errors...),
		Types:              make(map[string]*Type, len(s.Types)),
		RootOperationTypes: make(map[decl.OperationType]string, len(s.RootOperationTypes)),
		Directives:         make(map[string][]*decl.Argument, len(s.Directives)),
	}
	for name, t := range s.Types {
		ret.Types[name] = t
	}
	for op, name := range s.RootOperationTypes {
		ret.RootOperationTypes[op] = name
	}
	for name, args := range s.Directives {
		ret.Directives[name] = args
	}
	return ret
}
