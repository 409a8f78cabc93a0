package schema

import (
	"strings"

	"github.com/graphty/schemac/decl"
)

// The "__" prefix is reserved for the introspection system.
func checkReservedNames(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	var ret []*Error
	for _, d := range decls {
		switch def := d.(type) {
		case *decl.TypeDefinition:
			if strings.HasPrefix(def.Name, "__") {
				err := newError("type names must not begin with \"__\": %v", def.Name)
				err.TypeName = def.Name
				ret = append(ret, err)
			}
		case *decl.DirectiveDefinition:
			if strings.HasPrefix(def.Name, "__") {
				err := newError("directive names must not begin with \"__\": %v", def.Name)
				ret = append(ret, err)
			}
		}
	}
	return ret, nil
}
