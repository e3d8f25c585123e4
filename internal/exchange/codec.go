package exchange

import (
	"strconv"
	"strings"
)

// Field delimiter and quote character for the delimited-text format.
const (
	fieldDelim = ','
	fieldQuote = '"'
)

// EscapeField renders one scalar value as a delimited-text token. Values
// containing the delimiter, a quote, or a newline are wrapped in quotes with
// inner quotes doubled; anything else passes through verbatim.
func EscapeField(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte(fieldQuote)
	for i := 0; i < len(value); i++ {
		if value[i] == fieldQuote {
			b.WriteByte(fieldQuote)
		}
		b.WriteByte(value[i])
	}
	b.WriteByte(fieldQuote)
	return b.String()
}

// UnescapeField is the inverse of EscapeField: a quote-delimited token loses
// its outer quotes and collapses doubled quotes; any other token is returned
// verbatim.
func UnescapeField(token string) string {
	if len(token) >= 2 && token[0] == fieldQuote && token[len(token)-1] == fieldQuote {
		inner := token[1 : len(token)-1]
		return strings.ReplaceAll(inner, `""`, `"`)
	}
	return token
}

// optString maps an optional text field to its delimited-text token. Unset
// serializes to an empty field, which is also what an empty string becomes;
// the CSV format cannot tell those apart.
func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// optInt maps an optional integer to its token.
func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// optInt64 maps an optional long (epoch millis) to its token.
func optInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
