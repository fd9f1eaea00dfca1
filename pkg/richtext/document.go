package richtext

// Document is the structured rich-text body of a note. The node/mark
// schema belongs to the editor; the core only round-trips it, so the tree
// is kept as a generic JSON object rather than a typed node hierarchy.
type Document map[string]interface{}

// Empty returns the document used when stored content is blank or cannot
// be parsed.
func Empty() Document {
	return Document{}
}

// IsEmpty reports whether the document has no nodes at all.
func (d Document) IsEmpty() bool {
	return len(d) == 0
}
