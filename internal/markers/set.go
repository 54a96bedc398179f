package markers

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Set is an immutable collection of defined marker symbols.
type Set struct {
	defs map[string]string
}

// New returns a Set holding a copy of defs.
func New(defs map[string]string) Set {
	return Set{defs: maps.Clone(defs)}
}

// Of returns a Set in which every given name is defined as "1".
func Of(names ...string) Set {
	defs := make(map[string]string, len(names))
	for _, n := range names {
		defs[n] = "1"
	}
	return Set{defs: defs}
}

// Len returns the number of defined symbols.
func (s Set) Len() int {
	return len(s.defs)
}

// Defined reports whether name is defined, whatever its value.
func (s Set) Defined(name string) bool {
	_, ok := s.defs[name]
	return ok
}

// Any reports whether at least one of names is defined.
func (s Set) Any(names ...string) bool {
	for _, n := range names {
		if s.Defined(n) {
			return true
		}
	}
	return false
}

// Value returns the raw replacement text of name.
func (s Set) Value(name string) (string, bool) {
	v, ok := s.defs[name]
	return v, ok
}

// Int evaluates the replacement text of name as a C integer constant. It
// reports false when name is undefined or its text is not a plain integer
// literal.
func (s Set) Int(name string) (int64, bool) {
	v, ok := s.defs[name]
	if !ok {
		return 0, false
	}
	return ParseInt(v)
}

// Names returns the defined names in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s.defs))
}

// With returns a copy of s with name defined as value.
func (s Set) With(name, value string) Set {
	defs := make(map[string]string, len(s.defs)+1)
	maps.Copy(defs, s.defs)
	defs[name] = value
	return Set{defs: defs}
}

// Without returns a copy of s with the given names undefined.
func (s Set) Without(names ...string) Set {
	defs := maps.Clone(s.defs)
	if defs == nil {
		defs = map[string]string{}
	}
	for _, n := range names {
		delete(defs, n)
	}
	return Set{defs: defs}
}

// Merge returns a copy of s overlaid with every definition of o. Values from o
// win on conflicts.
func (s Set) Merge(o Set) Set {
	defs := make(map[string]string, len(s.defs)+len(o.defs))
	maps.Copy(defs, s.defs)
	maps.Copy(defs, o.defs)
	return Set{defs: defs}
}

// ParseInt evaluates a C integer literal such as "201112L", "0x5130", "017" or
// "(1)". Unsigned and long suffixes are ignored.
func ParseInt(text string) (int64, bool) {
	t := strings.TrimSpace(text)
	for len(t) >= 2 && t[0] == '(' && t[len(t)-1] == ')' {
		t = strings.TrimSpace(t[1 : len(t)-1])
	}
	neg := false
	if strings.HasPrefix(t, "-") {
		neg, t = true, strings.TrimSpace(t[1:])
	} else if strings.HasPrefix(t, "+") {
		t = strings.TrimSpace(t[1:])
	}
	t = strings.TrimRight(t, "uUlL")
	if t == "" {
		return 0, false
	}

	var (
		v   uint64
		err error
	)
	switch {
	case len(t) > 2 && (t[:2] == "0x" || t[:2] == "0X"):
		v, err = strconv.ParseUint(t[2:], 16, 63)
	case len(t) > 2 && (t[:2] == "0b" || t[:2] == "0B"):
		v, err = strconv.ParseUint(t[2:], 2, 63)
	case len(t) > 1 && t[0] == '0':
		v, err = strconv.ParseUint(t[1:], 8, 63)
	default:
		v, err = strconv.ParseUint(t, 10, 63)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		return -int64(v), true
	}
	return int64(v), true
}
