package apidoc

import "strings"

// FieldKind is the structural shape of a documented field.
type FieldKind int

const (
	// FieldScalar is a primitive value (string, number, boolean, ...).
	FieldScalar FieldKind = iota
	// FieldScalarArray is an array of primitives, written "<prim>[]".
	FieldScalarArray
	// FieldObject is a nested object; its members are documented as child paths.
	FieldObject
	// FieldObjectArray is an array of objects, written "Object[]" or "Array".
	FieldObjectArray
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case FieldScalar:
		return "scalar"
	case FieldScalarArray:
		return "scalar-array"
	case FieldObject:
		return "object"
	case FieldObjectArray:
		return "object-array"
	default:
		return "unknown"
	}
}

// DocumentedField is a documented field reduced to what the schema compiler needs.
type DocumentedField struct {
	// Path is the dotted or bracketed field path, e.g. "user.address.city" or "items[id]".
	Path string
	// Kind is the structural shape of the field.
	Kind FieldKind
	// Type is the lower-cased primitive name for FieldScalar and FieldScalarArray.
	Type string
	// Optional reports whether the field may be absent.
	Optional bool
	// Description is the raw description, markup included.
	Description string
	// DefaultValue is the documented default, used as the items example of scalar arrays.
	DefaultValue any
}

// ParseTypeTag maps an apidoc type tag onto a kind and primitive type name.
// The primitive is empty for object kinds.
func ParseTypeTag(tag string) (FieldKind, string) {
	t := strings.ToLower(tag)
	switch {
	case t == "object[]" || t == "array":
		return FieldObjectArray, ""
	case strings.HasSuffix(t, "[]"):
		return FieldScalarArray, strings.TrimSuffix(t, "[]")
	case t == "object":
		return FieldObject, ""
	default:
		return FieldScalar, t
	}
}

// Documented converts the raw apidoc field.
func (f Field) Documented() DocumentedField {
	kind, typ := ParseTypeTag(f.Type)
	return DocumentedField{
		Path:         f.Field,
		Kind:         kind,
		Type:         typ,
		Optional:     f.Optional,
		Description:  f.Description,
		DefaultValue: f.DefaultValue,
	}
}

// DocumentedFields converts a list of raw fields, keeping their order.
func DocumentedFields(fields []Field) []DocumentedField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]DocumentedField, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Documented())
	}
	return out
}
