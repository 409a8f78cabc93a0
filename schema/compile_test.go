package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphty/schemac/decl"
	"github.com/graphty/schemac/sdl"
)

func parseSource(t *testing.T, src string) []decl.Declaration {
	decls, err := sdl.ParseDeclarations("test.graphql", src)
	require.NoError(t, err)
	return decls
}

func compileSource(t *testing.T, src string) *Schema {
	s, err := Compile(parseSource(t, src))
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestCompile_DuplicateTypeNames(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String }
		type Query { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, []string{"Query"}, s.Errors[0].Duplicates)

	// The table keeps the last declaration per name regardless.
	assert.NotNil(t, s.Types["Query"])
}

func TestCompile_DuplicateTypeNames_OrderIndependent(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String }
		type Person { age: Int }
		type Person { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, []string{"Person"}, s.Errors[0].Duplicates)
	assert.Len(t, s.Types["Person"].Fields, 1)
	assert.Contains(t, s.Types["Person"].Fields, "name")
}

func TestCompile_BuiltinConflict(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String }
		type String { length: Int }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, []string{"String"}, s.Errors[0].Conflicts)
}

func TestCompile_DuplicateDirectiveNames(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String }
		directive @foo on FIELD
		directive @foo on OBJECT
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, []string{"foo"}, s.Errors[0].Duplicates)
}

func TestCompile_ReservedNames(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String }
		type __foo { length: Int }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, "__foo", s.Errors[0].TypeName)

	s = compileSource(t, `
		type Query { name: String }
		directive @__bar on FIELD
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "__bar")
}

func TestCompile_InterfaceConformance(t *testing.T) {
	s := compileSource(t, `
		type Query { person: Person }
		interface Named { name: String }
		type Person implements Named { name: String }
	`)
	assert.Empty(t, s.Errors)

	root := s.RootOperationType(decl.OperationTypeQuery)
	require.NotNil(t, root)
	assert.Equal(t, decl.TypeKindObject, root.Kind)
}

func TestCompile_MissingInterfaceField(t *testing.T) {
	s := compileSource(t, `
		type Query { person: Person }
		interface Named { name: String }
		type Person implements Named { age: Int }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, "name", s.Errors[0].FieldName)
	assert.Equal(t, "Named", s.Errors[0].Interface)
}

func TestCompile_UnknownFieldType(t *testing.T) {
	_, err := Compile(parseSource(t, `
		type Query { pet: Animal }
	`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pet")
	assert.Contains(t, err.Error(), "known type")
}

func TestCompile_InputObjectAsFieldType(t *testing.T) {
	s := compileSource(t, `
		type Query { filter: Filter }
		input Filter { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "field type")
	assert.Equal(t, "filter", s.Errors[0].FieldName)
}

func TestCompile_ArgumentTypes(t *testing.T) {
	// An unknown argument type is collected, not fatal.
	s := compileSource(t, `
		type Query { person(filter: Filter): String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "filter")

	// An output-only type cannot be used as an argument type.
	s = compileSource(t, `
		type Query { person(filter: Person): String }
		type Person { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "argument type")
	assert.Equal(t, "Person", s.Errors[0].TypeRef)
}

func TestCompile_ObjectMustHaveFields(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String }
		type Empty
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, "Empty", s.Errors[0].TypeName)
	assert.Contains(t, s.Errors[0].Message, "at least one field")
}

func TestCompile_DuplicateFieldNames(t *testing.T) {
	s := compileSource(t, `
		type Query { name: String name: Int }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, []string{"name"}, s.Errors[0].Duplicates)
	assert.Equal(t, "Query", s.Errors[0].TypeName)
}

func TestCompile_ReservedFieldAndArgumentNames(t *testing.T) {
	s := compileSource(t, `
		type Query { __name(__id: ID): String }
	`)
	require.Len(t, s.Errors, 2)
	assert.Contains(t, s.Errors[0].Message, "__name")
	assert.Contains(t, s.Errors[1].Message, "__id")
}

func TestCompile_DuplicateInterfaceDeclaration(t *testing.T) {
	s := compileSource(t, `
		type Query { person: Person }
		interface Named { name: String }
		type Person implements Named & Named { age: Int }
	`)
	// One duplicate error, and conformance runs only once against Named.
	require.Len(t, s.Errors, 2)
	assert.Equal(t, []string{"Named"}, s.Errors[0].Duplicates)
	assert.Equal(t, "name", s.Errors[1].FieldName)
}

func TestCompile_InterfaceNotProvided(t *testing.T) {
	s := compileSource(t, `
		type Query implements Node { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, "Node", s.Errors[0].Interface)
	assert.Contains(t, s.Errors[0].Message, "not provided")
}

func TestCompile_SchemaDefinition(t *testing.T) {
	s := compileSource(t, `
		schema @foo { query: Root }
		type Root { name: String }
	`)
	assert.Empty(t, s.Errors)
	assert.Equal(t, "Root", s.RootOperationTypes[decl.OperationTypeQuery])
	assert.Contains(t, s.Directives, "foo")

	// Without a schema declaration, the default names apply.
	s = compileSource(t, `
		type Query { name: String }
	`)
	assert.Empty(t, s.Errors)
	assert.Equal(t, "Query", s.RootOperationTypes[decl.OperationTypeQuery])
	assert.Equal(t, "Mutation", s.RootOperationTypes[decl.OperationTypeMutation])
	assert.Equal(t, "Subscription", s.RootOperationTypes[decl.OperationTypeSubscription])
}

func TestCompile_MultipleSchemaDefinitions(t *testing.T) {
	s := compileSource(t, `
		schema { query: Root }
		schema { query: Root }
		type Root { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "at most one schema definition")
}

func TestCompile_QueryRoot(t *testing.T) {
	s := compileSource(t, `
		type Person { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "must be provided")

	s = compileSource(t, `
		schema { query: Named }
		interface Named { name: String }
	`)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0].Message, "must be an Object type")
}

func TestCompile_AccumulatesErrors(t *testing.T) {
	s := compileSource(t, `
		type __foo { length: Int }
		type String { length: Int }
		directive @bar on FIELD
		directive @bar on FIELD
	`)
	require.Len(t, s.Errors, 4)
	assert.Equal(t, []string{"String"}, s.Errors[0].Conflicts)
	assert.Equal(t, []string{"bar"}, s.Errors[1].Duplicates)
	assert.Equal(t, "__foo", s.Errors[2].TypeName)
	assert.Contains(t, s.Errors[3].Message, "must be provided")
}

func TestCompile_Idempotence(t *testing.T) {
	decls := parseSource(t, `
		schema { query: Root }
		interface Named { name: String }
		type Root implements Named { name: String friends: [Named] }
		union Subject = Root
		enum Color { RED GREEN }
		directive @foo on FIELD
	`)
	first, err := Compile(decls)
	require.NoError(t, err)
	second, err := Compile(decls)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
}
