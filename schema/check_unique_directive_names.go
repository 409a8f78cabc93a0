package schema

import (
	"strings"

	"github.com/graphty/schemac/decl"
)

func checkUniqueDirectiveNames(decls []decl.Declaration, s *Schema) ([]*Error, error) {
	counts := map[string]int{}
	var duplicated []string
	for _, d := range decls {
		if def, ok := d.(*decl.DirectiveDefinition); ok {
			if counts[def.Name] == 1 {
				duplicated = append(duplicated, def.Name)
			}
			counts[def.Name]++
		}
	}
	if len(duplicated) == 0 {
		return nil, nil
	}
	err := newError("duplicate directive names: %v", strings.Join(duplicated, ", "))
	err.Duplicates = duplicated
	return []*Error{err}, nil
}
