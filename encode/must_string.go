package encode

import (
	"bytes"
	"strings"

	"github.com/sgriffith3/orderedYAML/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
