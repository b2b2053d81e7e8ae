package profile

import "github.com/zclconf/go-cty/cty"

// FieldType identifies how a field's declared type and literal value are
// rendered in the generated source.
type FieldType string

// The built-in field types. A Field with Raw set carries an arbitrary type
// expression in its Type instead of one of these.
const (
	TypeString  FieldType = "String"
	TypeBoolean FieldType = "boolean"
	TypeInt     FieldType = "int"
	TypeLong    FieldType = "long"
)

// Field is a single typed constant declaration within a profile. For raw
// fields the Value holds verbatim source text and Type holds the declared
// type expression; no escaping or validation is applied to either.
type Field struct {
	Name  string
	Type  FieldType
	Raw   bool
	Value cty.Value
}
