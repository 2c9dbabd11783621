package ocaf

import (
	"strconv"
	"strings"
)

func floatList(vs ...float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(parts, " ")
}

func appendFloats(s string, vs ...float32) string {
	if s != "" {
		s += " "
	}
	return s + floatList(vs...)
}

func appendInts(s string, vs ...uint32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	if s != "" {
		s += " "
	}
	return s + strings.Join(parts, " ")
}
