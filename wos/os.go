// environment helpers for command line flags
package wos

import (
	"fmt"
	"os"
	"strings"
)

// If s has a $ prefix then we assume
// that it is a placeholder and the actual
// value is in an env variable. The variable
// must be set.
//
// if there is no $ prefix then s is returned
func Getenv(s string) (string, error) {
	name, ok := strings.CutPrefix(s, "$")
	if !ok {
		return s, nil
	}
	v := os.Getenv(strings.ToUpper(name))
	if v == "" {
		return "", fmt.Errorf("expected %s to be set", s)
	}
	return v, nil
}

// EnvString is a flag value expanded with Getenv
// so that secrets such as node urls stay out of
// shell history.
type EnvString string

func (es *EnvString) Set(s string) error {
	v, err := Getenv(s)
	if err != nil {
		return err
	}
	*es = EnvString(v)
	return nil
}

func (es *EnvString) String() string { return string(*es) }
func (es *EnvString) Type() string   { return "string" }
