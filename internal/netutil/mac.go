package netutil

import "strings"

// IsMAC reports whether s is six hex octets separated consistently by
// either '-' or ':'. Case and surrounding whitespace are ignored.
func IsMAC(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 17 {
		return false
	}

	sep := s[2]
	if sep != '-' && sep != ':' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i%3 == 2 {
			if s[i] != sep {
				return false
			}
			continue
		}
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}
