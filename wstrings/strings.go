// helpers for turning metadata labels into Go identifiers
package wstrings

import (
	"errors"
	"go/token"
	"strings"
	"unicode"
)

// Safe reports an error when s contains characters
// that cannot appear in a Go identifier.
func Safe(s string) error {
	for _, r := range s {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return errors.New("must be 'a-z', 'A-Z', '0-9', or '_'")
		}
	}
	return nil
}

// Camel converts snake_case to CamelCase.
// Underscores are removed and the letter
// following each one is upper cased.
func Camel(str string) string {
	var (
		in  = []rune(str)
		res []rune
	)
	for i, r := range in {
		switch {
		case r == '_':
		case i == 0 || in[i-1] == '_':
			res = append(res, unicode.ToUpper(r))
		default:
			res = append(res, r)
		}
	}
	return string(res)
}

// Lower is Camel with the first letter lower cased
func Lower(str string) string {
	c := []rune(Camel(str))
	if len(c) == 0 {
		return ""
	}
	c[0] = unicode.ToLower(c[0])
	return string(c)
}

var predeclared = map[string]bool{
	"any": true, "append": true, "bool": true, "byte": true,
	"cap": true, "clear": true, "close": true, "comparable": true,
	"complex": true, "complex128": true, "complex64": true, "copy": true,
	"delete": true, "error": true, "false": true, "float32": true,
	"float64": true, "imag": true, "int": true, "int16": true,
	"int32": true, "int64": true, "int8": true, "iota": true,
	"len": true, "make": true, "max": true, "min": true,
	"new": true, "nil": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true, "rune": true,
	"string": true, "true": true, "uint": true, "uint16": true,
	"uint32": true, "uint64": true, "uint8": true, "uintptr": true,
}

// Reserved reports whether s is a Go keyword or
// a predeclared identifier.
func Reserved(s string) bool {
	return token.IsKeyword(s) || predeclared[s]
}

// PackageName turns a contract name into a valid
// package name: lower case letters and digits only.
func PackageName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r) && b.Len() > 0:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || token.IsKeyword(b.String()) {
		return "contract"
	}
	return b.String()
}
