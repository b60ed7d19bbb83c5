package domain

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// DisplayID returns a short identifier suitable for tables: the first 8
// characters of a UUID.
func DisplayID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
