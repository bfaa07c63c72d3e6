package game

import (
	"math"
	"unicode"
)

// ParseGuess reads the integer at the start of raw and ignores whatever
// follows it, so "42abc" is 42 and "3.9" is 3. Leading whitespace and a sign
// are accepted, as is a 0x prefix for hexadecimal. ok is false when no digit
// follows the optional sign and prefix. Values outside the int range saturate.
func ParseGuess(raw string) (n int, ok bool) {
	s := []rune(raw)
	i := 0
	for i < len(s) && unicode.IsSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := 10
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}

	var (
		acc      uint64
		digits   int
		overflow bool
	)
	for ; i < len(s); i++ {
		d := digitValue(s[i], base)
		if d < 0 {
			break
		}
		digits++
		if overflow {
			continue
		}
		if acc > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			continue
		}
		acc = acc*uint64(base) + uint64(d)
	}
	if digits == 0 {
		return 0, false
	}

	if neg {
		if overflow || acc > uint64(math.MaxInt)+1 {
			return math.MinInt, true
		}
		return int(-int64(acc)), true
	}
	if overflow || acc > math.MaxInt {
		return math.MaxInt, true
	}
	return int(acc), true
}

func digitValue(r rune, base int) int {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'f':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = int(r-'A') + 10
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}
