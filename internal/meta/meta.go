package meta

// MethodMetadata describes one remote operation of the API.
// This type is internal so the catalog can only be populated by the
// eventbrite package itself.
type MethodMetadata struct {
	Name          string
	Group         string
	Authenticated bool
	// Unsupported holds the reason the client refuses to call the
	// operation. Empty for supported operations.
	Unsupported string
}

// Supported reports whether the client will send requests for the operation.
func (m *MethodMetadata) Supported() bool {
	return m.Unsupported == ""
}
