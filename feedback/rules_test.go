package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRequired(t *testing.T) {
	for _, name := range Fields {
		assert.Equal(t, MsgRequired, Check(name, ""), "empty %s should be required", name)
		assert.Equal(t, MsgRequired, Check(name, "   \t"), "blank %s should be required", name)
	}
}

func TestCheckRules(t *testing.T) {
	cases := []struct {
		name  string
		field FieldName
		value string
		want  string
	}{
		{"plain first name", FieldFirstName, "Jonas", ""},
		{"lithuanian diacritics", FieldSurname, "Ąžuolaitė-Čiurlionė", ""},
		{"apostrophe and space", FieldSurname, "O'Neil Smith", ""},
		{"digits in name", FieldFirstName, "Jonas123", MsgLettersOnly},
		{"non lithuanian diacritic", FieldFirstName, "Äčę", MsgLettersOnly},
		{"short email", FieldEmail, "a@b.co", ""},
		{"email without tld", FieldEmail, "a@b", MsgInvalidEmail},
		{"email without domain", FieldEmail, "a.b@", MsgInvalidEmail},
		{"email with space", FieldEmail, "a b@c.lt", MsgInvalidEmail},
		{"address long enough", FieldAddress, "Gedimino pr. 1", ""},
		{"address four runes", FieldAddress, "Šūža", ""},
		{"address too short", FieldAddress, "abc", MsgShortAddress},
		{"rating lower bound", FieldDesign, "1", ""},
		{"rating upper bound", FieldContent, "10", ""},
		{"rating fraction", FieldConvenience, "7.5", ""},
		{"rating zero", FieldDesign, "0", MsgRating},
		{"rating eleven", FieldContent, "11", MsgRating},
		{"rating text", FieldConvenience, "abc", MsgRating},
		{"rating nan", FieldConvenience, "NaN", MsgRating},
		{"rating hex float", FieldDesign, "0x1p3", MsgRating},
		{"rating hex integer", FieldContent, "0x8", MsgRating},
		{"rating digit separator", FieldConvenience, "1_0", MsgRating},
		{"rating exponent", FieldDesign, "1e1", ""},
		{"phone international", FieldPhone, "+37061234567", ""},
		{"phone 86 prefix", FieldPhone, "861234567", ""},
		{"phone 6 prefix", FieldPhone, "61234567", ""},
		{"phone with separators", FieldPhone, "8 612 345 67", ""},
		{"phone too short", FieldPhone, "86123", MsgInvalidPhone},
		{"phone wrong prefix", FieldPhone, "071234567", MsgInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Check(tc.field, tc.value))
		})
	}
}

func TestCheckTrimsValue(t *testing.T) {
	assert.Equal(t, "", Check(FieldFirstName, "  Jonas  "))
	assert.Equal(t, MsgShortAddress, Check(FieldAddress, "  ab  "))
}

func TestCheckUnknownField(t *testing.T) {
	assert.Equal(t, "", Check(FieldName("nickname"), "anything"))
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"86012345":        "+3706012345",
		"861234567":       "+37061234567",
		"61234567":        "+37061234567",
		"+370 612 34567":  "+37061234567",
		"370":             "+370",
		"0612":            "0612",
		"abc":             "",
		"(8-6) 12-34-567": "+37061234567",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPhone(in), "FormatPhone(%q)", in)
	}
}

func TestAverage(t *testing.T) {
	assert.Equal(t, "9.0", Average("8", "9", "10"))
	assert.Equal(t, "1.0", Average("1", "1", "1"))
	assert.Equal(t, "6.7", Average("5", "7", "8"))
	assert.Equal(t, "7.3", Average("7", "7", "8"))
}
