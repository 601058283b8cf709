package schema

// Outline is a serializable view of a node tree, used for model dumps.
// Field order follows the document model; properties keep their order.
// Ref targets are rendered by name only.
type Outline struct {
	Kind        Kind              `json:"kind" yaml:"kind"`
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	TypeName    string            `json:"typename,omitempty" yaml:"typename,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Unique      bool              `json:"unique,omitempty" yaml:"unique,omitempty"`
	Default     any               `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Pattern     string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Minimum     any               `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     any               `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Ref         string            `json:"ref,omitempty" yaml:"ref,omitempty"`
	RefResolved bool              `json:"refResolved,omitempty" yaml:"refResolved,omitempty"`
	ID          string            `json:"id,omitempty" yaml:"id,omitempty"`
	Schema      string            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Properties  []PropertyOutline `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *Outline          `json:"items,omitempty" yaml:"items,omitempty"`
	AnyOf       []*Outline        `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Meta        map[string]any    `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// PropertyOutline is one ordered property of an Outline.
type PropertyOutline struct {
	Name   string   `json:"name" yaml:"name"`
	Schema *Outline `json:"schema" yaml:"schema"`
}

// OutlineOf builds the Outline of node. It returns nil for a nil node.
func OutlineOf(node Node) *Outline {
	if node == nil {
		return nil
	}
	b := node.Attrs()
	o := &Outline{
		Kind:        node.Kind(),
		Name:        b.Name,
		Title:       b.Title,
		Description: b.Description,
		Required:    b.Required,
		Unique:      b.Unique,
		Default:     b.Default,
		Enum:        b.Enum,
		ID:          b.ID,
		Schema:      b.Schema,
		Meta:        b.Meta,
	}
	if b.Ref != nil {
		o.Ref = b.Ref.TargetName()
		o.RefResolved = b.Ref.Resolved()
	}
	for _, alt := range b.AnyOf {
		o.AnyOf = append(o.AnyOf, OutlineOf(alt))
	}

	switch n := node.(type) {
	case *Object:
		for _, p := range n.Properties {
			o.Properties = append(o.Properties, PropertyOutline{Name: p.Name, Schema: OutlineOf(p.Node)})
		}
	case *Array:
		o.Items = OutlineOf(n.Items)
	case *String:
		o.Pattern = n.Pattern
	case *Integer:
		o.Minimum, o.Maximum = boundValues(n.Numeric)
	case *Float:
		o.Minimum, o.Maximum = boundValues(n.Numeric)
	case *Unknown:
		o.TypeName = n.TypeName
	}
	return o
}

func boundValues[T int64 | float64](n Numeric[T]) (min, max any) {
	if n.Minimum != nil {
		min = *n.Minimum
	}
	if n.Maximum != nil {
		max = *n.Maximum
	}
	return min, max
}
