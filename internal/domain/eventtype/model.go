package eventtype

// EventType is an entry of the global, non organization scoped event catalogue.
// Name is free text and may be in either language the console supports.
type EventType struct {
	ID   int64
	Name string
}
