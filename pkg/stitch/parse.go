package stitch

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOrder extracts the ordering key embedded in a transcript filename.
//
// The key is the second '_'-separated token of the segment before the first
// '@', parsed as an integer. For example, "voice_42@2023-01-01.txt" yields 42.
func ParseOrder(filename string) (int, error) {
	head := strings.Split(filename, "@")[0]
	tokens := strings.Split(head, "_")
	if len(tokens) < 2 {
		return 0, fmt.Errorf("no order token in %q", filename)
	}
	order, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("order token %q in %q is not an integer", tokens[1], filename)
	}
	return order, nil
}
