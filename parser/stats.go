package parser

// DocumentStats contains counts collected while parsing.
type DocumentStats struct {
	Nodes          int // every schema node built
	Objects        int // object nodes
	Enums          int // nodes carrying an enum
	Unknown        int // nodes whose type was not recognized or absent
	ResolvedRefs   int // $ref names found in the context
	UnresolvedRefs int // $ref names kept as plain names
}

// add folds other into s.
func (s *DocumentStats) add(other DocumentStats) {
	s.Nodes += other.Nodes
	s.Objects += other.Objects
	s.Enums += other.Enums
	s.Unknown += other.Unknown
	s.ResolvedRefs += other.ResolvedRefs
	s.UnresolvedRefs += other.UnresolvedRefs
}
