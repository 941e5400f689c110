package dictionary

// keypad maps each uppercase letter to its telephone dial pad digit.
var keypad = [26]byte{
	'2', '2', '2',      // A B C
	'3', '3', '3',      // D E F
	'4', '4', '4',      // G H I
	'5', '5', '5',      // J K L
	'6', '6', '6',      // M N O
	'7', '7', '7', '7', // P Q R S
	'8', '8', '8',      // T U V
	'9', '9', '9', '9', // W X Y Z
}

// Digit returns the keypad digit for a letter. Lowercase letters are folded
// first; anything that is not an ASCII letter maps to '0'.
func Digit(c byte) byte {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return '0'
	}
	return keypad[c-'A']
}

// Encode returns the digit sequence dialed to spell word.
func Encode(word string) string {
	buf := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		buf[i] = Digit(word[i])
	}
	return string(buf)
}
