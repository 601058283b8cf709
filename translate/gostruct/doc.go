// Package gostruct renders schema nodes as Go struct declarations.
//
// Objects become structs with json tags (and validate tags when enabled),
// string enums become a named string type plus a const block, and every
// declaration is hoisted to the top level of the file:
//
//	type User struct {
//		Email string `json:"email" validate:"required"`
//		Age *int64 `json:"age,omitempty" validate:"gte=0,lte=150"`
//	}
//
// Optional fields are pointers when Options.UsePointers is set, except for
// slices and interface-like types. Unrecognized type names map to any,
// "date" and "datetime" to time.Time and "file" to []byte.
//
// The output opens with translate.DepsMarker, which the merge step replaces
// with import lines. [Format] runs goimports over a merged file.
package gostruct
