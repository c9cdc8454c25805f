// Package debug gates developer debug output behind environment variables.
// The library itself never logs; these switches exist for troubleshooting
// ordering resolution interactively.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Reshape bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("ORDEREDYAML_DEBUG_RESOLVE")
	d.Reshape = boolEnv("ORDEREDYAML_DEBUG_RESHAPE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}

func Reshape() bool {
	return d.Reshape
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
