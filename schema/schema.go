// Package schema compiles parsed schema-definition-language declarations into
// a queryable schema, validating them against the GraphQL specification's
// type-system rules. Validation never fails fast: every rule violation is
// collected as a structured Error on the compiled schema.
package schema

import (
	"fmt"
	"regexp"

	"github.com/graphty/schemac/decl"
)

// Type is a named type known to a compiled schema: either a user-provided type
// definition augmented with a field-name index, or one of the built-in
// scalars.
type Type struct {
	Name string
	Kind decl.TypeKind

	// Decl is the type definition this entry was built from. It is nil for
	// built-in scalars.
	Decl *decl.TypeDefinition

	// Fields indexes the definition's fields by name.
	Fields map[string]*decl.FieldDefinition

	Builtin bool
}

func (t *Type) String() string {
	return t.Name
}

func (t *Type) IsInputType() bool {
	switch t.Kind {
	case decl.TypeKindScalar, decl.TypeKindEnum, decl.TypeKindInputObject:
		return true
	default:
		return false
	}
}

func (t *Type) IsOutputType() bool {
	switch t.Kind {
	case decl.TypeKindScalar, decl.TypeKindObject, decl.TypeKindInterface, decl.TypeKindUnion, decl.TypeKindEnum:
		return true
	default:
		return false
	}
}

// Schema is the result of compiling a declaration sequence. It is always
// returned fully populated, but consumers must check Errors before trusting
// the tables for execution purposes: the provided-types table reflects the
// last-seen declaration per name even when errors exist.
type Schema struct {
	// Errors holds every well-formedness violation found, in check order.
	Errors []*Error

	// Types is the provided-types table. It does not include the built-in
	// scalars.
	Types map[string]*Type

	// RootOperationTypes maps each operation to the name of its root type,
	// from an explicit schema declaration or the spec-mandated defaults.
	RootOperationTypes map[decl.OperationType]string

	// Directives holds the schema-level directives by name.
	Directives map[string][]*decl.Argument
}

// NamedType resolves a type name, consulting built-in types before provided
// types.
func (s *Schema) NamedType(name string) *Type {
	if t, ok := builtins[name]; ok {
		return t
	}
	return s.Types[name]
}

// RootOperationType returns the resolved root type for the given operation,
// or nil if the named type was never provided.
func (s *Schema) RootOperationType(op decl.OperationType) *Type {
	name, ok := s.RootOperationTypes[op]
	if !ok {
		return nil
	}
	return s.Types[name]
}

func (s *Schema) HasErrors() bool {
	return len(s.Errors) > 0
}

// Error is a structured well-formedness violation. Message is always set; the
// remaining fields identify the offending names and types for the checks that
// have them.
type Error struct {
	Message string `json:"message"`

	TypeName  string `json:"type,omitempty"`
	FieldName string `json:"field,omitempty"`
	Interface string `json:"interface,omitempty"`

	// Duplicates carries the duplicated names found by a uniqueness check.
	Duplicates []string `json:"duplicates,omitempty"`

	// Conflicts carries the names found by a conflict or overlap check.
	Conflicts []string `json:"conflicts,omitempty"`

	// TypeRef and InterfaceTypeRef are SDL renderings of the type references
	// involved in a classification or covariance violation.
	TypeRef          string `json:"typeRef,omitempty"`
	InterfaceTypeRef string `json:"interfaceTypeRef,omitempty"`
}

func (err *Error) Error() string {
	return err.Message
}

func newError(message string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(message, args...),
	}
}

var nameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func isName(s string) bool {
	return nameRegex.MatchString(s)
}
