// Package parser provides VCD trace parsing and grid decoding utilities.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
)

// RootName is the name of the synthetic node holding the top-level scopes.
const RootName = "root"

// maxLineSize bounds a single trace line; wide vectors can make long lines.
const maxLineSize = 16 * 1024 * 1024

// ParseVCDFile parses the VCD trace at path into a signal tree.
func ParseVCDFile(path string) (*models.SignalNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseVCD(f)
}

// ParseVCD parses a VCD trace into a signal tree.
// The returned root is named RootName; its children are the top-level scopes
// and any variable declared outside a scope.
func ParseVCD(r io.Reader) (*models.SignalNode, error) {
	root := &models.SignalNode{Name: RootName}
	p := &vcdParser{
		tok:   newTokenizer(r),
		stack: []*models.SignalNode{root},
		vars:  make(map[string][]*models.SignalNode),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	if err := p.parseChanges(); err != nil {
		return nil, err
	}
	return root, nil
}

type vcdParser struct {
	tok   *tokenizer
	stack []*models.SignalNode
	// vars maps an identifier code to every variable declared with it.
	vars map[string][]*models.SignalNode
	time uint64
}

func (p *vcdParser) current() *models.SignalNode {
	return p.stack[len(p.stack)-1]
}

// parseHeader reads declarations up to and including $enddefinitions.
func (p *vcdParser) parseHeader() error {
	for {
		tok, ok := p.tok.next()
		if !ok {
			if err := p.tok.err(); err != nil {
				return err
			}
			return p.tok.fail("missing $enddefinitions")
		}

		switch tok {
		case "$scope":
			args, err := p.tok.until()
			if err != nil {
				return err
			}
			if len(args) < 2 {
				return p.tok.fail("$scope needs a type and a name")
			}
			scope := &models.SignalNode{Kind: args[0], Name: args[1]}
			parent := p.current()
			parent.Children = append(parent.Children, scope)
			p.stack = append(p.stack, scope)

		case "$upscope":
			if _, err := p.tok.until(); err != nil {
				return err
			}
			if len(p.stack) == 1 {
				return p.tok.fail("$upscope without matching $scope")
			}
			p.stack = p.stack[:len(p.stack)-1]

		case "$var":
			args, err := p.tok.until()
			if err != nil {
				return err
			}
			if len(args) < 4 {
				return p.tok.fail("$var needs a type, width, identifier and reference")
			}
			width, err := strconv.Atoi(args[1])
			if err != nil || width < 1 {
				return p.tok.fail("bad $var width %q", args[1])
			}
			// args[4:], when present, is a bit-select such as [3:0].
			v := &models.SignalNode{Kind: args[0], Width: width, Name: args[3]}
			parent := p.current()
			parent.Children = append(parent.Children, v)
			p.vars[args[2]] = append(p.vars[args[2]], v)

		case "$enddefinitions":
			if _, err := p.tok.until(); err != nil {
				return err
			}
			if open := len(p.stack) - 1; open != 0 {
				return p.tok.fail("%d unclosed $scope at $enddefinitions", open)
			}
			return nil

		default:
			if !strings.HasPrefix(tok, "$") {
				return p.tok.fail("unexpected %q in header", tok)
			}
			// $date, $version, $timescale, $comment and friends.
			if _, err := p.tok.until(); err != nil {
				return err
			}
		}
	}
}

// parseChanges reads timestamps and value changes until EOF.
func (p *vcdParser) parseChanges() error {
	for {
		tok, ok := p.tok.next()
		if !ok {
			return p.tok.err()
		}

		switch c := tok[0]; {
		case c == '#':
			t, err := strconv.ParseUint(tok[1:], 10, 64)
			if err != nil {
				return p.tok.fail("bad timestamp %q", tok)
			}
			p.time = t

		case c == '$':
			switch tok {
			case "$dumpvars", "$dumpall", "$dumpon", "$dumpoff", "$end":
			case "$comment":
				if _, err := p.tok.until(); err != nil {
					return err
				}
			default:
				return p.tok.fail("unexpected %q after $enddefinitions", tok)
			}

		case c == 'b' || c == 'B' || c == 'r' || c == 'R':
			id, ok := p.tok.next()
			if !ok {
				return p.tok.fail("value %q has no identifier", tok)
			}
			if err := p.record(id, tok); err != nil {
				return err
			}

		case strings.IndexByte("01xXzZ", c) >= 0:
			if len(tok) < 2 {
				return p.tok.fail("scalar %q has no identifier", tok)
			}
			if err := p.record(tok[1:], tok[:1]); err != nil {
				return err
			}

		default:
			return p.tok.fail("unexpected %q", tok)
		}
	}
}

func (p *vcdParser) record(id, value string) error {
	nodes, ok := p.vars[id]
	if !ok {
		return p.tok.fail("value change for undeclared identifier %q", id)
	}
	for _, n := range nodes {
		n.Data = append(n.Data, models.Sample{Time: p.time, Value: value})
	}
	return nil
}

// tokenizer splits a trace into whitespace-separated tokens and tracks
// the line each token came from.
type tokenizer struct {
	sc      *bufio.Scanner
	line    int
	pending []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		t.line++
		t.pending = strings.Fields(t.sc.Text())
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, true
}

func (t *tokenizer) err() error {
	return t.sc.Err()
}

// until collects the tokens of a declaration up to its closing $end.
func (t *tokenizer) until() ([]string, error) {
	var args []string
	for {
		tok, ok := t.next()
		if !ok {
			if err := t.err(); err != nil {
				return nil, err
			}
			return nil, t.fail("missing $end")
		}
		if tok == "$end" {
			return args, nil
		}
		args = append(args, tok)
	}
}

func (t *tokenizer) fail(format string, args ...interface{}) error {
	return &TraceError{
		Line: t.line,
		Err:  fmt.Errorf("%w: %s", ErrMalformedTrace, fmt.Sprintf(format, args...)),
	}
}
