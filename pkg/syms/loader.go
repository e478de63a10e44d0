package syms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/symguess/pkg/logging/logfields"
)

const (
	separator   = " - "
	maxLineSize = 1 << 20
)

func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads one "<name> - <hex address>" record per line. Blank lines are
// skipped; any other line that does not parse aborts with a *RecordError.
func Parse(r io.Reader, source string) (*List, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	l := &List{source: source}
	seen := make(map[string]int)
	var lineno int
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		sym, err := parseRecord(text)
		if err != nil {
			return nil, &RecordError{Source: source, Line: lineno, Text: text, Err: err}
		}
		if first, dup := seen[sym.Name]; dup {
			log.WithFields(logrus.Fields{
				logfields.File:   source,
				logfields.Line:   lineno,
				logfields.Symbol: sym.Name,
			}).Debugf("Duplicate symbol, lookups resolve to index %d", first)
		} else {
			seen[sym.Name] = len(l.symbols)
		}
		l.symbols = append(l.symbols, sym)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", source, err)
	}

	log.WithFields(logrus.Fields{
		logfields.File:    source,
		logfields.Symbols: len(l.symbols),
	}).Debug("Loaded symbol list")
	return l, nil
}

func parseRecord(text string) (Symbol, error) {
	fields := strings.Split(text, separator)
	if len(fields) != 2 {
		return Symbol{}, fmt.Errorf("expected 2 fields separated by %q, got %d", separator, len(fields))
	}
	addr, err := parseHex(fields[1])
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Name: fields[0], Addr: addr}, nil
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return 0, errors.New("empty address")
	}
	addr, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv parse uint (%s): %w", s, err)
	}
	return addr, nil
}
