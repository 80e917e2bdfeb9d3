package utils

import "strconv"

// IsSeedLetter reports whether b is a single lowercase letter.
func IsSeedLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// FormatWithCommas renders n with thousands separators for CLI output.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
