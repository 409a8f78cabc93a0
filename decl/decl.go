// Package decl defines the parsed schema-definition-language declarations
// consumed by the schema compiler. Declarations are produced by an external
// parser (see the sdl package) and are assumed to be grammatically well-formed:
// every field has a name and a type reference.
package decl

// TypeDefinition, DirectiveDefinition, SchemaDefinition, or SchemaExtension
type Declaration interface{}

type TypeKind string

const (
	TypeKindScalar      TypeKind = "scalar"
	TypeKindObject      TypeKind = "object"
	TypeKindInterface   TypeKind = "interface"
	TypeKindUnion       TypeKind = "union"
	TypeKindEnum        TypeKind = "enum"
	TypeKindInputObject TypeKind = "input-object"
)

func (k TypeKind) IsValid() bool {
	switch k {
	case TypeKindScalar, TypeKindObject, TypeKindInterface, TypeKindUnion, TypeKindEnum, TypeKindInputObject:
		return true
	default:
		return false
	}
}

type OperationType string

const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

func (t OperationType) IsValid() bool {
	switch t {
	case OperationTypeQuery, OperationTypeMutation, OperationTypeSubscription:
		return true
	default:
		return false
	}
}

type TypeDefinition struct {
	Name string
	Kind TypeKind

	// Fields is populated for object, interface, and input-object types.
	Fields []*FieldDefinition

	// Interfaces names the interfaces an object type claims to implement.
	Interfaces []string

	// Types names the member types of a union.
	Types []string

	// EnumValues holds the values of an enum type.
	EnumValues []string

	Directives []*Directive
}

type FieldDefinition struct {
	Name      string
	Type      TypeRef
	Arguments []*InputValueDefinition
}

type InputValueDefinition struct {
	Name string
	Type TypeRef
}

type DirectiveDefinition struct {
	Name      string
	Arguments []*InputValueDefinition
	Locations []DirectiveLocation
}

type DirectiveLocation string

const (
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"

	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

type SchemaDefinition struct {
	Directives     []*Directive
	OperationTypes map[OperationType]string
}

type SchemaExtension struct {
	Directives     []*Directive
	OperationTypes map[OperationType]string
}

type Directive struct {
	Name      string
	Arguments []*Argument
}

type Argument struct {
	Name  string
	Value interface{}
}
