package hexconv

// Lower maps a nibble onto its lowercase hex digit.
var Lower = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// Split returns both nibbles of the byte, the most significant one first.
func Split(b byte) (high, low byte) {
	return (b >> 4) & 0xf, b & 0xf
}
