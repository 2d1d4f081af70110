package topology

import (
	"bufio"
	"fmt"
	"io"
)

// DistanceUnit is the quantization unit (in km) for link lengths: a
// distance-matrix entry v>0 becomes a link of length round(v/DistanceUnit).
const DistanceUnit = 5.0

// LoadMatrix parses a topology-file stream (spec.md §6) into a Graph.
//
// Format:
//  1. First token: node count N.
//  2. If a digit follows N on the same line, that token is a link count
//     L, followed by N discarded header lines (node labels).
//  3. N×N non-negative doubles in row-major order; a strictly positive
//     value v becomes a directed link of length round(v/DistanceUnit).
//
// Both directions of a bidirectional link must be given explicitly: the
// matrix is not assumed symmetric.
func LoadMatrix(r io.Reader) (*Graph, error) {
	sc := newTokenScanner(r)

	n, ok := sc.nextInt()
	if !ok || n < 2 {
		return nil, ErrTooFewNodes
	}

	// A digit after N on the same line signals an explicit link count followed by
	// N header lines to discard (node labels we have no use for).
	if sc.peekIsDigit() {
		if _, ok := sc.nextInt(); !ok {
			return nil, ErrMalformedMatrix
		}
		// The cursor sits right after the link-count token, still on its
		// line; discard the rest of that line before the N label lines.
		sc.skipLine()
		for i := 0; i < n; i++ {
			if !sc.skipLine() {
				return nil, ErrMalformedMatrix
			}
		}
	}

	type rawEdge struct {
		src, dst NodeID
		length   int
	}
	edges := make([]rawEdge, 0, n*2)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			v, ok := sc.nextFloat()
			if !ok {
				return nil, fmt.Errorf("%w: expected %d values, stream ended at row %d col %d", ErrMalformedMatrix, n*n, i, k)
			}
			if v > 0 {
				edges = append(edges, rawEdge{
					src:    NodeID(i),
					dst:    NodeID(k),
					length: roundDiv(v, DistanceUnit),
				})
			}
		}
	}

	// Edges are already produced in row-major (i.e. source-grouped, CSR)
	// order by the double loop above, so no sort is needed.
	g := &Graph{
		numNodes: n,
		offset:   make([]int, n+1),
		dest:     make([]NodeID, len(edges)),
		length:   make([]int, len(edges)),
	}
	for idx, e := range edges {
		g.dest[idx] = e.dst
		g.length[idx] = e.length
		g.offset[e.src+1] = idx + 1
	}
	// fill forward so that nodes with zero out-degree inherit the
	// previous node's running offset instead of staying at zero.
	for u := 1; u <= n; u++ {
		if g.offset[u] < g.offset[u-1] {
			g.offset[u] = g.offset[u-1]
		}
	}
	return g, nil
}

// roundDiv computes round(v/unit) with the half-away-from-zero tie-break
// the original simulator uses (C's lrint on a non-negative value).
func roundDiv(v, unit float64) int {
	return int(v/unit + 0.5)
}

// tokenScanner is a tiny whitespace-delimited number scanner, the Go
// equivalent of reading an istream with operator>> as the original
// simulator's loader does.
type tokenScanner struct {
	r    *bufio.Reader
	peek byte
	has  bool
}

func newTokenScanner(r io.Reader) *tokenScanner {
	return &tokenScanner{r: bufio.NewReaderSize(r, 64*1024)}
}

func (s *tokenScanner) readByte() (byte, bool) {
	if s.has {
		s.has = false
		return s.peek, true
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (s *tokenScanner) unread(b byte) {
	s.peek = b
	s.has = true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

func (s *tokenScanner) skipSpace() {
	for {
		b, ok := s.readByte()
		if !ok {
			return
		}
		if !isSpace(b) {
			s.unread(b)
			return
		}
	}
}

// peekIsDigit reports whether the next byte on the current line, after
// any spaces or tabs, is an ASCII digit, without consuming it. It never
// looks past a newline.
func (s *tokenScanner) peekIsDigit() bool {
	for {
		b, ok := s.readByte()
		if !ok {
			return false
		}
		if b == ' ' || b == '\t' || b == '\r' {
			continue
		}
		s.unread(b)
		return b >= '0' && b <= '9'
	}
}

func (s *tokenScanner) nextToken() (string, bool) {
	s.skipSpace()
	var buf []byte
	for {
		b, ok := s.readByte()
		if !ok {
			break
		}
		if isSpace(b) {
			s.unread(b)
			break
		}
		buf = append(buf, b)
	}
	if len(buf) == 0 {
		return "", false
	}
	return string(buf), true
}

func (s *tokenScanner) nextInt() (int, bool) {
	tok, ok := s.nextToken()
	if !ok {
		return 0, false
	}
	var v int
	var neg bool
	i := 0
	if i < len(tok) && (tok[i] == '-' || tok[i] == '+') {
		neg = tok[i] == '-'
		i++
	}
	if i == len(tok) {
		return 0, false
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
		v = v*10 + int(tok[i]-'0')
	}
	if neg {
		v = -v
	}
	return v, true
}

func (s *tokenScanner) nextFloat() (float64, bool) {
	tok, ok := s.nextToken()
	if !ok {
		return 0, false
	}
	var v float64
	if _, err := fmt.Sscanf(tok, "%g", &v); err != nil {
		return 0, false
	}
	return v, true
}

// skipLine discards bytes up to and including the next newline,
// reporting false only if the stream ended first.
func (s *tokenScanner) skipLine() bool {
	for {
		b, ok := s.readByte()
		if !ok {
			return false
		}
		if b == '\n' {
			return true
		}
	}
}
