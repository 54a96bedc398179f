package resolve

import "github.com/specialistvlad/platformid/internal/markers"

const (
	// StandardC89 is reported for compilers that claim conformance through
	// __STDC__ but predate __STDC_VERSION__. C90 is the same language and
	// resolves to the lower year.
	StandardC89 = 1989
	// StandardPre89 is reported when no conformance is claimed at all.
	StandardPre89 = 1988
)

// Standard returns the language-standard year of set.
//
// __STDC_VERSION__ is divided by 100 so that newer standards always compare
// higher (199409 → 1994, 201112 → 2011). Without it, a positive __STDC__ means
// 1989 and anything else 1988. A positive minLevel that exceeds the result is an
// unsupported environment.
func Standard(set markers.Set, minLevel int) (int, error) {
	level, err := standardLevel(set)
	if err != nil {
		return 0, err
	}
	if minLevel > 0 && minLevel > level {
		return 0, unsupported(CategoryStandard,
			"required minimum standard level %d not met (resolved %d)", minLevel, level)
	}
	return level, nil
}

func standardLevel(set markers.Set) (int, error) {
	if raw, ok := set.Value("__STDC_VERSION__"); ok {
		v, ok := markers.ParseInt(raw)
		if !ok || v <= 0 {
			return 0, unsupported(CategoryStandard, "malformed __STDC_VERSION__ %q", raw)
		}
		return int(v / 100), nil
	}
	if v, ok := set.Int("__STDC__"); ok && v > 0 {
		return StandardC89, nil
	}
	return StandardPre89, nil
}
