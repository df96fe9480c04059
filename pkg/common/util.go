package common

import (
	"fmt"
	"iter"
	"strings"
)

// Format renders a sequence as "[a b c]", matching fmt's slice output.
func Format[T any](seq iter.Seq[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
