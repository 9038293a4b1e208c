package shorten

// Alphabet lists Base62 digits in their order: digits, lowercase, then uppercase letters.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// 62^9 > 2^48, so any 48-bit value fits
const maxDigits = 9

var isDigit = func() (table [256]bool) {
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = true
	}

	return table
}()

// Base62 renders n most significant digit first. Zero is rendered as "0".
func Base62(n uint64) string {
	if n == 0 {
		return Alphabet[:1]
	}

	var buff [13]byte // enough for the whole uint64 range
	i := len(buff)

	for n > 0 {
		i--
		buff[i] = Alphabet[n%62]
		n /= 62
	}

	return string(buff[i:])
}

// IsCode tells whether str might be a code at all: 1 to maxLen Base62 characters.
func IsCode(str string, maxLen int) bool {
	if len(str) == 0 || len(str) > maxLen {
		return false
	}

	for i := 0; i < len(str); i++ {
		if !isDigit[str[i]] {
			return false
		}
	}

	return true
}
