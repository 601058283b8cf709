package mongoengine

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// pyLiteral renders a plain decoded value as a Python literal.
func pyLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return pyFloat(v)
	case string:
		return pyString(v)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = pyLiteral(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		items := make([]string, 0, len(v))
		for _, k := range sortedKeys(v) {
			items = append(items, pyString(k)+": "+pyLiteral(v[k]))
		}
		return "{" + strings.Join(items, ", ") + "}"
	}
	return pyString(fmt.Sprint(v))
}

// pyFloat renders f the way Python's repr does for ordinary values.
func pyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	switch s {
	case "+Inf":
		return "float('inf')"
	case "-Inf":
		return "float('-inf')"
	case "NaN":
		return "float('nan')"
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

var singleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// pyString renders s as a single-quoted Python string.
func pyString(s string) string {
	return "'" + singleQuoteEscaper.Replace(s) + "'"
}

var doubleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// pyQuote renders s as a double-quoted Python string.
func pyQuote(s string) string {
	return `"` + doubleQuoteEscaper.Replace(s) + `"`
}

// pyDocstring renders a one-line docstring.
func pyDocstring(s string) string {
	return `"""` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"""`, `\"\"\"`) + `"""`
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
