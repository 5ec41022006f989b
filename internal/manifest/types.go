package manifest

// Manifest represents an extension manifest: the record describing the
// extension's identity and version. Only Name and Version are interpreted;
// every other field is carried through a load/save round-trip untouched.
type Manifest struct {
	Name    string
	Version string

	// fields holds the complete decoded record, Name and Version included,
	// so unknown fields survive a round-trip.
	fields map[string]any
}

// Validate checks that the required fields are present and non-empty
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if m.Version == "" {
		return ErrMissingVersion
	}
	return nil
}

// SetVersion updates the version field
func (m *Manifest) SetVersion(version string) {
	m.Version = version
	m.fields["version"] = version
}

// Fields returns a copy of the full decoded record
func (m *Manifest) Fields() map[string]any {
	out := make(map[string]any, len(m.fields))
	for k, v := range m.fields {
		out[k] = v
	}
	return out
}
