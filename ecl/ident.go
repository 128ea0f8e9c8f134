package ecl

// IsIdent reports whether s is a legal identifier in the target dialect:
// an ASCII letter or underscore followed by any number of ASCII letters,
// digits, or underscores. Equivalent to ^[A-Za-z_][A-Za-z0-9_]*$.
//
// Section names, table keys, and constant names must all satisfy IsIdent.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '_',
			c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z':
			// always legal

		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}

		default:
			return false
		}
	}

	return true
}
