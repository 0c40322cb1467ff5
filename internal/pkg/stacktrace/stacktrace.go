package stacktrace

import (
	"bufio"
	"bytes"
	"strings"
)

const internalMarker = "/internal/"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" frames of a raw
// debug.Stack() trace, innermost first. Frames outside internal packages,
// such as the runtime and the standard library, are dropped.
func InternalPaths(stack []byte) []string {
	var paths []string

	sc := bufio.NewScanner(bytes.NewReader(stack))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		// file lines look like "/src/app/internal/x/y.go:42 +0x1d"
		file, _, _ := strings.Cut(line, " ")
		if !strings.Contains(file, ".go:") {
			continue
		}

		_, rel, ok := strings.Cut(file, internalMarker)
		if !ok {
			continue
		}
		paths = append(paths, "internal/"+rel)
	}

	return paths
}
