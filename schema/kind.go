package schema

// Kind is the discriminant of a schema node.
type Kind string

const (
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindFloat   Kind = "number"
	KindBoolean Kind = "boolean"
	KindNull    Kind = "null"
	// KindUnknown marks a type name the model does not recognize.
	KindUnknown Kind = "UNKNOWN"
)

// UnknownTypeName is the TypeName of an Unknown node whose document
// carried no type at all.
const UnknownTypeName = "unknown"

var knownKinds = map[string]Kind{
	string(KindObject):  KindObject,
	string(KindArray):   KindArray,
	string(KindString):  KindString,
	string(KindInteger): KindInteger,
	string(KindFloat):   KindFloat,
	string(KindBoolean): KindBoolean,
	string(KindNull):    KindNull,
}

// LookupKind maps a document type name to its Kind. Only the seven concrete
// type names are recognized; ok is false for everything else, including
// "UNKNOWN" itself.
func LookupKind(name string) (k Kind, ok bool) {
	k, ok = knownKinds[name]
	return k, ok
}

// String returns the discriminant as written in documents.
func (k Kind) String() string {
	return string(k)
}
