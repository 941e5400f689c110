package mnemonic

import "github.com/bastiangx/phoneword/internal/utils"

// Separator is placed between tokens unless two literal digits meet.
const Separator = "-"

// Clean reduces a raw query to its ASCII digits.
func Clean(raw string) string {
	return utils.KeepDigits(raw)
}

// Join appends token to a partial rendering. Adjacent literal digits fuse
// into one run; every other boundary gets a Separator.
func Join(built, token string) string {
	if built == "" {
		return token
	}
	if endsWithDigit(built) && token != "" && utils.IsDigit(token[0]) {
		return built + token
	}
	return built + Separator + token
}

// allowsStray reports whether a 2-9 digit may be placed as a literal after built.
// Only one such digit may follow another literal digit.
func allowsStray(built string) bool {
	return built == "" || !endsWithDigit(built)
}

// isUnmapped reports digits that no keypad letter encodes to.
func isUnmapped(c byte) bool {
	return c == '0' || c == '1'
}

func endsWithDigit(s string) bool {
	return s != "" && utils.IsDigit(s[len(s)-1])
}
