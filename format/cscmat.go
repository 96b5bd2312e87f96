package format

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/qkdcore/ldpc4qkd/matrix"
)

// ReadCSCMat loads the mother matrix from the "cscmat" text layout:
// zero or more "#"-prefixed comment lines, one metadata line (ignored
// by this reader), a line of column-pointer integers, a blank line, and
// a line of row-index integers. Integers are decimal or 0x-prefixed
// hex; leading/trailing whitespace on data lines is trimmed.
func ReadCSCMat(path string) (*matrix.MotherMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, parseErrorf(path, "open: %v", err)
	}
	defer f.Close()

	colPtr, rowIdx, err := parseCSCMat(path, f)
	if err != nil {
		return nil, err
	}
	mm, err := matrix.NewMotherMatrixFromCSC(colPtr, rowIdx)
	if err != nil {
		return nil, parseErrorf(path, "invalid CSC: %v", err)
	}
	return mm, nil
}

func parseCSCMat(path string, r io.Reader) (colPtr, rowIdx []int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, nil, parseErrorf(path, "read: %v", err)
	}

	idx := 0
	for idx < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[idx]), "#") {
		idx++
	}
	if idx >= len(lines) {
		return nil, nil, parseErrorf(path, "missing metadata line")
	}
	idx++ // skip metadata line (ignored)

	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	if idx >= len(lines) {
		return nil, nil, parseErrorf(path, "missing colptr line")
	}
	colPtr, err = parseIntList(lines[idx])
	if err != nil {
		return nil, nil, parseErrorf(path, "colptr: %v", err)
	}
	idx++

	if idx >= len(lines) || strings.TrimSpace(lines[idx]) != "" {
		return nil, nil, parseErrorf(path, "expected blank line after colptr")
	}
	idx++

	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	if idx >= len(lines) {
		return nil, nil, parseErrorf(path, "missing rowidx line")
	}
	rowIdx, err = parseIntList(lines[idx])
	if err != nil {
		return nil, nil, parseErrorf(path, "rowidx: %v", err)
	}

	return colPtr, rowIdx, nil
}

func parseIntList(line string) ([]int, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	out := make([]int, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseInt(tok, 0, 64) // base 0: decimal or 0x-prefixed hex
		if err != nil {
			return nil, err
		}
		out = append(out, int(v))
	}
	return out, nil
}
