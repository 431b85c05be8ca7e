package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadWords reads a flat text program: one 32-bit instruction word per
// line, with trailing "# comment" text and blank lines ignored. It returns
// the words in file order and does not read base; placing them in memory
// is left to the caller. This is the format
// used for small hand-assembled test programs, where writing an ELF is
// more ceremony than the program warrants.
func LoadWords(r io.Reader, base uint32) ([]uint32, error) {
	var words []uint32
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, err := strconv.ParseUint(line, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
		words = append(words, uint32(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
