package translate

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/erraggy/flexschema/schema"
)

// Signature returns a structural fingerprint of node for Define. Two nodes
// with the same signature render to the same declaration. Attributes set by
// the parent (name, required, default, unique) are ignored at the root so one
// object reused under several properties hoists once. The description is
// kept because backends render it into the declaration.
func Signature(node schema.Node) string {
	o := schema.OutlineOf(node)
	if o == nil {
		return ""
	}
	root := *o
	root.Name = ""
	root.Required = false
	root.Unique = false
	root.Default = nil
	data, err := json.Marshal(&root)
	if err != nil {
		// Meta held a value json cannot encode; distinct nodes never merge.
		return fmt.Sprintf("node:%p", node)
	}
	return string(data)
}

// EnumSignature returns the fingerprint of an enum's values. Backends that
// render the enum's description into the declaration pass it; others pass "".
func EnumSignature(values []string, description string) string {
	data, _ := json.Marshal(values)
	if description == "" {
		return string(data)
	}
	desc, _ := json.Marshal(description)
	return string(data) + ":" + string(desc)
}
