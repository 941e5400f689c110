package utils

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// KeepDigits drops every byte of s that is not an ASCII digit.
func KeepDigits(s string) string {
	return keep(s, IsDigit)
}

// KeepLetters drops every byte of s that is not an ASCII letter.
// Multi-byte UTF-8 sequences never match and are removed whole.
func KeepLetters(s string) string {
	return keep(s, IsLetter)
}

func keep(s string, match func(byte) bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if match(s[i]) {
			n++
		}
	}
	if n == len(s) {
		return s
	}
	buf := make([]byte, 0, n)
	for i := 0; i < len(s); i++ {
		if match(s[i]) {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}
