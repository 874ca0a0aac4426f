package storage

// NotFoundError is returned when a record doesn't exist in the store.
// Kind names the record type, e.g. "session" or "user".
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}

	return e.Kind + " not found: " + e.ID
}
