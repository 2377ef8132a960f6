package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var errOddTokens = errors.New("odd number of vertex ids")

// LoadEdgeList reads whitespace separated integer pairs, one or more per
// line. Blank lines and lines starting with '#' or '%' are skipped.
func LoadEdgeList(r io.Reader) (*Graph, error) {
	b, err := ReadEdgeList(r)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// LoadEdgeListFile opens path and loads it with LoadEdgeList.
func LoadEdgeListFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()

	return LoadEdgeList(f)
}

// ReadEdgeList parses an edge list into a Builder so callers can inspect
// loader statistics before finalizing.
func ReadEdgeList(r io.Reader) (*Builder, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields)%2 != 0 {
			return nil, &ParseError{Line: lineNo, Text: line, Cause: errOddTokens}
		}

		for i := 0; i < len(fields); i += 2 {
			from, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Cause: err}
			}
			to, err := strconv.ParseInt(fields[i+1], 10, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Cause: err}
			}
			b.AddEdge(from, to)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	return b, nil
}
