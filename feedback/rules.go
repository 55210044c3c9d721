package feedback

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MsgRequired     = "field required"
	MsgLettersOnly  = "letters only"
	MsgInvalidEmail = "invalid email format"
	MsgShortAddress = "address too short"
	MsgRating       = "enter a number from 1 to 10"
	MsgInvalidPhone = "invalid phone number"
)

const minAddressLength = 4

var (
	namePattern  = regexp.MustCompile(`^[A-Za-zĄČĘĖĮŠŲŪŽąčęėįšųūž\s'-]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)

	phoneShapes = []*regexp.Regexp{
		regexp.MustCompile(`^3706\d{7}$`),
		regexp.MustCompile(`^86\d{7}$`),
		regexp.MustCompile(`^6\d{7}$`),
	}
)

// Check applies the rule for name to value and returns the error message,
// or "" when the value passes. Unknown names always pass.
func Check(name FieldName, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return MsgRequired
	}

	switch {
	case name == FieldFirstName || name == FieldSurname:
		if !namePattern.MatchString(value) {
			return MsgLettersOnly
		}
	case name == FieldEmail:
		if !emailPattern.MatchString(value) {
			return MsgInvalidEmail
		}
	case name == FieldAddress:
		if utf8.RuneCountInString(value) < minAddressLength {
			return MsgShortAddress
		}
	case name.isRating():
		if _, ok := parseRating(value); !ok {
			return MsgRating
		}
	case name == FieldPhone:
		if !validPhone(value) {
			return MsgInvalidPhone
		}
	}
	return ""
}

// parseRating accepts plain decimal numbers only. ParseFloat also takes hex
// floats and digit separators, which a rating field must not.
func parseRating(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if strings.ContainsAny(value, "xX_") {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || n < 1 || n > 10 {
		return 0, false
	}
	return n, true
}

func validPhone(value string) bool {
	digits := nonDigits.ReplaceAllString(value, "")
	for _, shape := range phoneShapes {
		if shape.MatchString(digits) {
			return true
		}
	}
	return false
}

// FormatPhone normalises a phone number while it is being typed:
// 86xxxxxxx and 6xxxxxxx become +3706xxxxxxx, other digit runs stay bare.
func FormatPhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(digits, "86"):
		digits = "3706" + digits[2:]
	case strings.HasPrefix(digits, "6"):
		digits = "370" + digits
	}

	if strings.HasPrefix(digits, "370") {
		return "+" + digits
	}
	return digits
}
