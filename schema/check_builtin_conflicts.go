package schema

import (
	"strings"

	"github.com/graphty/schemac/decl"
)

func checkBuiltinConflicts(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	seen := map[string]struct{}{}
	var conflicts []string
	for _, d := range decls {
		def, ok := d.(*decl.TypeDefinition)
		if !ok {
			continue
		}
		if _, ok := builtins[def.Name]; !ok {
			continue
		}
		if _, ok := seen[def.Name]; ok {
			continue
		}
		seen[def.Name] = struct{}{}
		conflicts = append(conflicts, def.Name)
	}
	if len(conflicts) == 0 {
		return nil, nil
	}
	err := newError("type names must not conflict with built-in types: %v", strings.Join(conflicts, ", "))
	err.Conflicts = conflicts
	return []*Error{err}, nil
}
