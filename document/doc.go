// Package document decodes JSON and YAML input into the raw tree the parser
// consumes.
//
// The raw tree is its own small tagged union, separate from the schema
// model: an [*Object] keeps its entries in document order, an [*Array]
// keeps its items, and a [*Scalar] holds a typed literal (nil, bool, int64,
// float64 or string). Every value records the line and column it came from
// so parse errors can point at the source.
//
// JSON is decoded through the YAML decoder (JSON is a YAML subset), which is
// what keeps mapping order intact:
//
//	values, err := document.Decode(data)
//	if err != nil {
//		return err
//	}
//	for _, v := range values {
//		// one value per YAML document in the stream
//	}
//
// Callers that already hold decoded Go values can use [FromGo]; Go maps have
// no order, so keys are sorted.
package document
