package hexconv

// Halfbyte maps an ASCII hex digit to its value. Every other character maps to 0xFF, so
// a|b > 0x0f detects an invalid pair in a single comparison.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()
