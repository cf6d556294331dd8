package util

import (
	"math/rand"
	"strings"
)

// RandomDigits returns n random decimal digits, leading zeros kept.
func RandomDigits(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}
