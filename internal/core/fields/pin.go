package fields

import "regexp"

// DefaultPin is used when the message carries no usable pincode.
const DefaultPin = "110001"

var pinRegex = regexp.MustCompile(`\b(\d{6})\b`)

// placeholder pins sellers paste without meaning them.
var bogusPins = map[string]struct{}{
	"123456": {},
	"654321": {},
}

// Pin extracts a six-digit Indian pincode from the message text,
// rejecting obvious placeholders. Falls back to DefaultPin.
func Pin(text string) string {
	for _, m := range pinRegex.FindAllStringSubmatch(text, -1) {
		pin := m[1]

		if _, bogus := bogusPins[pin]; bogus {
			continue
		}

		if allSameDigit(pin) {
			continue
		}

		return pin
	}

	return DefaultPin
}

func allSameDigit(pin string) bool {
	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			return false
		}
	}

	return true
}
