package nanp

// keypad maps 'A'..'Z' to the digit printed on a telephone key.
var keypad = [26]byte{
	'2', '2', '2', // A B C
	'3', '3', '3', // D E F
	'4', '4', '4', // G H I
	'5', '5', '5', // J K L
	'6', '6', '6', // M N O
	'7', '7', '7', '7', // P Q R S
	'8', '8', '8', // T U V
	'9', '9', '9', '9', // W X Y Z
}

// KeypadDigit returns the keypad digit for an ASCII letter (either case).
// Digits are returned unchanged; any other byte reports false.
func KeypadDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c, true
	case c >= 'A' && c <= 'Z':
		return keypad[c-'A'], true
	case c >= 'a' && c <= 'z':
		return keypad[c-'a'], true
	default:
		return 0, false
	}
}
