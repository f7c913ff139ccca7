package reedsolomon

import (
	"fmt"
	"strings"
)

// hex_dump formats a block of symbols, 16 per line, for the driver's
// verbose output.

func hex_dump(p []byte) string {
	var sb strings.Builder
	var offset = 0

	for len(p) > 0 {
		var n = min(len(p), 16)

		fmt.Fprintf(&sb, "  %03x: ", offset)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&sb, " %02x", p[i])
		}
		sb.WriteString("\n")
		p = p[n:]
		offset += n
	}

	return sb.String()
}
