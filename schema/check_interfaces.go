package schema

import (
	"strings"

	"github.com/graphty/schemac/decl"
)

// checkObjectInterfaces validates an object type's implements list: no
// duplicate interface names, every name provided, and every provided interface
// satisfied field by field. Conformance runs at most once per distinct
// interface name.
func (s *Schema) checkObjectInterfaces(def *decl.TypeDefinition) []*Error {
	var ret []*Error

	counts := map[string]int{}
	var distinct, duplicated []string
	for _, name := range def.Interfaces {
		if counts[name] == 0 {
			distinct = append(distinct, name)
		} else if counts[name] == 1 {
			duplicated = append(duplicated, name)
		}
		counts[name]++
	}
	if len(duplicated) > 0 {
		err := newError("%v interface declaration contains duplicates: %v", def.Name, strings.Join(duplicated, ", "))
		err.TypeName = def.Name
		err.Duplicates = duplicated
		ret = append(ret, err)
	}

	for _, name := range distinct {
		iface, ok := s.Types[name]
		if !ok {
			err := newError("interface %v declared but not provided", name)
			err.TypeName = def.Name
			err.Interface = name
			ret = append(ret, err)
			continue
		}
		ret = append(ret, s.checkInterfaceConformance(def, iface)...)
	}

	return ret
}

func (s *Schema) checkInterfaceConformance(def *decl.TypeDefinition, iface *Type) []*Error {
	var ret []*Error

	fields := make(map[string]*decl.FieldDefinition, len(def.Fields))
	for _, field := range def.Fields {
		fields[field.Name] = field
	}

	for _, ifaceField := range iface.Decl.Fields {
		field, ok := fields[ifaceField.Name]
		if !ok {
			err := newError("%v is missing field %v defined in interface %v", def.Name, ifaceField.Name, iface.Name)
			err.TypeName = def.Name
			err.FieldName = ifaceField.Name
			err.Interface = iface.Name
			ret = append(ret, err)
			continue
		}
		if !s.isSubTypeOf(field.Type, ifaceField.Type) {
			err := newError("field %v of %v must be a covariant sub-type of the corresponding field on interface %v", field.Name, def.Name, iface.Name)
			err.TypeName = def.Name
			err.FieldName = field.Name
			err.Interface = iface.Name
			err.TypeRef = decl.TypeRefString(field.Type)
			err.InterfaceTypeRef = decl.TypeRefString(ifaceField.Type)
			ret = append(ret, err)
		}
	}

	return ret
}
