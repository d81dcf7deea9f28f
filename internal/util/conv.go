package util

import (
	"strconv"
)

// MustParseUint converts a path/query parameter, returning 0 on bad input.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
