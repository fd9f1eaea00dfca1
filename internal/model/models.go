package model

// All returns every model the schema migration must cover, parents before
// children so foreign keys resolve.
func All() []interface{} {
	return []interface{}{
		&Notebook{},
		&Note{},
		&NoteVersion{},
		&Attachment{},
		&Setting{},
	}
}
