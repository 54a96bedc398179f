package markers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseError reports a malformed line in a macro dump.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse reads a predefined-macro dump in the format printed by `cc -dM -E`.
//
// Object-like macros keep their replacement text; function-like macros are
// recorded as defined with their body as value. `#undef` lines remove earlier
// definitions, other directives (line markers, pragmas) are skipped.
func Parse(r io.Reader) (Set, error) {
	defs := make(map[string]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if line[0] != '#' {
			return Set{}, &ParseError{Line: n, Text: line, Msg: "expected a preprocessor directive"}
		}

		directive, rest := splitWord(strings.TrimSpace(line[1:]))
		switch directive {
		case "define":
			name, value, err := splitDefine(rest)
			if err != nil {
				return Set{}, &ParseError{Line: n, Text: line, Msg: err.Error()}
			}
			defs[name] = value
		case "undef":
			name, _ := splitWord(rest)
			if !IsIdent(name) {
				return Set{}, &ParseError{Line: n, Text: line, Msg: "invalid macro name"}
			}
			delete(defs, name)
		default:
			// Line markers and pragmas carry no definitions.
		}
	}
	if err := sc.Err(); err != nil {
		return Set{}, fmt.Errorf("failed to read macro dump: %w", err)
	}

	return Set{defs: defs}, nil
}

// ParseDefinition parses a command-line style definition, "NAME" or
// "NAME=VALUE". A bare name is defined as "1", matching `cc -DNAME`.
func ParseDefinition(s string) (string, string, error) {
	name, value, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !IsIdent(name) {
		return "", "", fmt.Errorf("invalid macro name %q", name)
	}
	if !found {
		return name, "1", nil
	}
	return name, value, nil
}

func splitWord(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func splitDefine(s string) (string, string, error) {
	end := 0
	for end < len(s) && isIdentByte(s[end], end == 0) {
		end++
	}
	name := s[:end]
	if !IsIdent(name) {
		return "", "", errors.New("invalid macro name")
	}
	rest := s[end:]
	if strings.HasPrefix(rest, "(") {
		rp := strings.IndexByte(rest, ')')
		if rp < 0 {
			return "", "", errors.New("unterminated parameter list")
		}
		rest = rest[rp+1:]
	}
	return name, strings.TrimSpace(rest), nil
}

// IsIdent reports whether s is a valid C identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i], i == 0) {
			return false
		}
	}
	return true
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
