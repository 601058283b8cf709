package schema

// Ref is a link from a node to another schema. A resolved Ref carries the
// context entry itself in Target; an unresolved one only carries the raw
// Name from the document. The link never owns Target: the node belongs to
// whichever tree or context built it.
type Ref struct {
	Name   string
	Target Node
}

// Resolved reports whether the reference points at a built node.
func (r *Ref) Resolved() bool {
	return r != nil && r.Target != nil
}

// TargetName returns the name to render for the reference: the target's
// key when resolved and keyed, otherwise the raw name.
func (r *Ref) TargetName() string {
	if r == nil {
		return ""
	}
	if r.Target != nil {
		if k := r.Target.Key(); k != "" {
			return k
		}
	}
	return r.Name
}
