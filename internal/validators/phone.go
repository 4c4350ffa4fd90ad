package validators

import "unicode"

// IsPhoneValid applies the front-desk rule: at least 10 digits, ignoring
// spaces, dashes and a leading +. Anything else in the string rejects it.
func IsPhoneValid(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 10
}
