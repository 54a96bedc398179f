package resolve

import (
	"github.com/specialistvlad/platformid/internal/markers"
	"github.com/specialistvlad/platformid/internal/platform"
)

// Options tunes a resolution.
type Options struct {
	// StandardMin is the minimum acceptable standard year; zero disables the
	// check.
	StandardMin int
}

// Resolve runs all four resolvers against set. Either every fact resolves and
// a valid record is returned, or the first *UnsupportedError is returned with
// a zero record.
func Resolve(set markers.Set, opts Options) (platform.Record, error) {
	level, err := Standard(set, opts.StandardMin)
	if err != nil {
		return platform.Record{}, err
	}
	compiler, err := Compiler(set)
	if err != nil {
		return platform.Record{}, err
	}
	cpu, err := Architecture(set)
	if err != nil {
		return platform.Record{}, err
	}
	osys, err := OS(set)
	if err != nil {
		return platform.Record{}, err
	}

	rec := platform.Record{
		StandardLevel: level,
		Compiler:      compiler,
		CPU:           cpu,
		OS:            osys,
	}
	if opts.StandardMin > 0 {
		rec.StandardLevelMin = opts.StandardMin
	}
	return rec, nil
}
