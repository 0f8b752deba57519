// Package corridors reads corridor lists from files.
package corridors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nkngn/payment-router/internal/route"
)

// ErrMalformedCorridor is returned when a corridor line or document cannot be
// parsed. Values themselves are never business-validated.
var ErrMalformedCorridor = errors.New("malformed corridor")

// Document is the YAML shape of a corridor file.
type Document struct {
	Corridors []route.Corridor `yaml:"corridors"`
}

// Query is a single routing query together with the corridors it runs on.
type Query struct {
	Source      string
	Destination string
	Amount      float64
	Corridors   []route.Corridor
}

// LoadFile reads a corridor file. .yaml and .yml files are decoded as a
// Document, anything else as the line format.
func LoadFile(path string) ([]route.Corridor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corridors file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(file)
	default:
		return ReadLines(file)
	}
}

// ReadYAML decodes a Document.
func ReadYAML(r io.Reader) ([]route.Corridor, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedCorridor, err)
	}
	return doc.Corridors, nil
}

// ReadLines reads one corridor per line:
//
//	USD EUR 1.5 1.2
//
// Blank lines and lines starting with # are skipped.
func ReadLines(r io.Reader) ([]route.Corridor, error) {
	scanner := bufio.NewScanner(r)
	var out []route.Corridor
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := ParseCorridor(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corridors: %w", err)
	}
	return out, nil
}

// ParseCorridor parses "SRC DST FEE RATE".
func ParseCorridor(line string) (route.Corridor, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return route.Corridor{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedCorridor, len(fields))
	}
	fee, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return route.Corridor{}, fmt.Errorf("%w: fee %q", ErrMalformedCorridor, fields[2])
	}
	rate, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return route.Corridor{}, fmt.Errorf("%w: rate %q", ErrMalformedCorridor, fields[3])
	}
	return route.Corridor{
		Source:      fields[0],
		Destination: fields[1],
		Fee:         fee,
		Rate:        rate,
	}, nil
}

// ReadQuery reads the CLI input format:
//
//	USD JPY 10000      <- source destination amount
//	2                  <- n
//	USD EUR 1.5 1.2    <- n corridor lines
//	EUR JPY 1.0 160
func ReadQuery(r io.Reader) (Query, error) {
	scanner := bufio.NewScanner(r)

	// Dòng 1: source destination amount
	if !scanner.Scan() {
		return Query{}, fmt.Errorf("read query header: %w", scanErr(scanner))
	}
	parts := strings.Fields(scanner.Text())
	if len(parts) != 3 {
		return Query{}, fmt.Errorf("query header: want 3 fields, got %d", len(parts))
	}
	amount, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Query{}, fmt.Errorf("query amount %q: %w", parts[2], err)
	}
	q := Query{Source: parts[0], Destination: parts[1], Amount: amount}

	// Dòng 2: n - số corridor
	if !scanner.Scan() {
		return Query{}, fmt.Errorf("read corridor count: %w", scanErr(scanner))
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return Query{}, fmt.Errorf("corridor count %q: invalid", scanner.Text())
	}

	// n dòng tiếp theo: các corridor. n không được dùng làm capacity.
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return Query{}, fmt.Errorf("corridor %d of %d: %w", i+1, n, scanErr(scanner))
		}
		c, err := ParseCorridor(scanner.Text())
		if err != nil {
			return Query{}, fmt.Errorf("corridor %d: %w", i+1, err)
		}
		q.Corridors = append(q.Corridors, c)
	}
	return q, nil
}

func scanErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
