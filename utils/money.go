package utils

import (
	"strconv"
	"strings"
)

// FormatUZS formats an integer amount of so'm as a string like "495 000".
// Uses a space as thousands separator, matching how prices are shown in
// Uzbekistan. The currency code is appended by the caller.
func FormatUZS(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + sign
	b.Grow(len(s) + len(s)/3 + 1)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
