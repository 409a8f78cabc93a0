// Package sdl converts GraphQL schema-definition-language documents into the
// declaration records consumed by the schema package. Parsing is delegated to
// gqlparser; this package only reshapes its AST. The schema package itself
// never depends on a parser.
package sdl

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/graphty/schemac/decl"
)

// ParseDeclarations parses an SDL document into declarations, preserving
// document order. Object, interface, union, enum, scalar, and input-object
// definitions, directive definitions, schema definitions, and schema
// extensions are supported; type extensions are not.
func ParseDeclarations(name, input string) ([]decl.Declaration, error) {
	doc, err := parser.ParseSchema(&ast.Source{
		Name:  name,
		Input: input,
	})
	if err != nil {
		return nil, err
	}
	return ConvertDocument(doc)
}

// SplitExtensions separates schema extensions from the declarations that
// Compile consumes, preserving order within each group.
func SplitExtensions(decls []decl.Declaration) ([]decl.Declaration, []*decl.SchemaExtension) {
	var base []decl.Declaration
	var exts []*decl.SchemaExtension
	for _, d := range decls {
		if ext, ok := d.(*decl.SchemaExtension); ok {
			exts = append(exts, ext)
		} else {
			base = append(base, d)
		}
	}
	return base, exts
}

type positioned struct {
	start int
	decl  decl.Declaration
}

// ConvertDocument reshapes a parsed schema document into declarations ordered
// by source position.
func ConvertDocument(doc *ast.SchemaDocument) ([]decl.Declaration, error) {
	if len(doc.Extensions) > 0 {
		return nil, errors.Errorf("type extensions are not supported: %v", doc.Extensions[0].Name)
	}

	var nodes []positioned
	for _, def := range doc.Definitions {
		converted, err := convertDefinition(def)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, positioned{start(def.Position), converted})
	}
	for _, def := range doc.Directives {
		nodes = append(nodes, positioned{start(def.Position), convertDirectiveDefinition(def)})
	}
	for _, def := range doc.Schema {
		nodes = append(nodes, positioned{start(def.Position), &decl.SchemaDefinition{
			Directives:     convertDirectives(def.Directives),
			OperationTypes: convertOperationTypes(def.OperationTypes),
		}})
	}
	for _, def := range doc.SchemaExtension {
		nodes = append(nodes, positioned{start(def.Position), &decl.SchemaExtension{
			Directives:     convertDirectives(def.Directives),
			OperationTypes: convertOperationTypes(def.OperationTypes),
		}})
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].start < nodes[j].start
	})

	ret := make([]decl.Declaration, len(nodes))
	for i, node := range nodes {
		ret[i] = node.decl
	}
	return ret, nil
}

func start(pos *ast.Position) int {
	if pos == nil {
		return 0
	}
	return pos.Start
}

var kinds = map[ast.DefinitionKind]decl.TypeKind{
	ast.Scalar:      decl.TypeKindScalar,
	ast.Object:      decl.TypeKindObject,
	ast.Interface:   decl.TypeKindInterface,
	ast.Union:       decl.TypeKindUnion,
	ast.Enum:        decl.TypeKindEnum,
	ast.InputObject: decl.TypeKindInputObject,
}

func convertDefinition(def *ast.Definition) (*decl.TypeDefinition, error) {
	kind, ok := kinds[def.Kind]
	if !ok {
		return nil, errors.Errorf("unsupported definition kind: %v", def.Kind)
	}

	ret := &decl.TypeDefinition{
		Name:       def.Name,
		Kind:       kind,
		Interfaces: def.Interfaces,
		Types:      def.Types,
		Directives: convertDirectives(def.Directives),
	}
	for _, field := range def.Fields {
		ret.Fields = append(ret.Fields, &decl.FieldDefinition{
			Name:      field.Name,
			Type:      convertType(field.Type),
			Arguments: convertInputValues(field.Arguments),
		})
	}
	for _, value := range def.EnumValues {
		ret.EnumValues = append(ret.EnumValues, value.Name)
	}
	return ret, nil
}

func convertDirectiveDefinition(def *ast.DirectiveDefinition) *decl.DirectiveDefinition {
	ret := &decl.DirectiveDefinition{
		Name:      def.Name,
		Arguments: convertInputValues(def.Arguments),
	}
	for _, loc := range def.Locations {
		ret.Locations = append(ret.Locations, decl.DirectiveLocation(loc))
	}
	return ret
}

func convertOperationTypes(defs ast.OperationTypeDefinitionList) map[decl.OperationType]string {
	if len(defs) == 0 {
		return nil
	}
	ret := make(map[decl.OperationType]string, len(defs))
	for _, def := range defs {
		ret[decl.OperationType(def.Operation)] = def.Type
	}
	return ret
}

func convertInputValues(defs ast.ArgumentDefinitionList) []*decl.InputValueDefinition {
	var ret []*decl.InputValueDefinition
	for _, def := range defs {
		ret = append(ret, &decl.InputValueDefinition{
			Name: def.Name,
			Type: convertType(def.Type),
		})
	}
	return ret
}

func convertDirectives(directives ast.DirectiveList) []*decl.Directive {
	var ret []*decl.Directive
	for _, d := range directives {
		converted := &decl.Directive{
			Name: d.Name,
		}
		for _, arg := range d.Arguments {
			converted.Arguments = append(converted.Arguments, &decl.Argument{
				Name:  arg.Name,
				Value: convertValue(arg.Value),
			})
		}
		ret = append(ret, converted)
	}
	return ret
}

func convertType(t *ast.Type) decl.TypeRef {
	var ref decl.TypeRef
	if t.Elem != nil {
		ref = decl.NewListType(convertType(t.Elem))
	} else {
		ref = &decl.NamedType{Name: t.NamedType}
	}
	if t.NonNull {
		ref = decl.NewNonNullType(ref)
	}
	return ref
}

func convertValue(v *ast.Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.IntValue, ast.FloatValue, ast.StringValue, ast.BlockValue, ast.EnumValue:
		return v.Raw
	case ast.BooleanValue:
		return v.Raw == "true"
	case ast.NullValue:
		return nil
	default:
		return v.String()
	}
}
