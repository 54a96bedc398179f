// Package header renders a resolved build unit as a C header.
package header

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "header" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("header", &registry.RegisteredEmitter{Ext: ".h", Separator: "\n", Fn: Emit})
}

type define struct {
	Name  string
	Value string
	Group string
	// Default marks a define the includer may override before inclusion.
	Default bool
}

type headerData struct {
	Unit     string
	ID       string
	Guard    string
	Defines  []define
	Level    string
	LevelMin string
}

var headerTmpl = template.Must(template.New("header").Parse(`/* Code generated by platformid. DO NOT EDIT. */
/* unit: {{.Unit}} */
/* record: {{.ID}} */
#ifndef {{.Guard}}
#define {{.Guard}}
{{- $group := ""}}
{{range .Defines}}
{{- if ne .Group $group}}{{$group = .Group}}
/* {{.Group}} */
{{end}}
{{- if .Default}}#ifndef {{.Name}}
#define {{.Name}} {{.Value}}
#endif
{{else}}#define {{.Name}} {{.Value}}
{{end}}
{{- end}}
#if defined({{.LevelMin}}) && {{.LevelMin}} > {{.Level}}
#error "{{.LevelMin}} is greater than {{.Level}}"
#endif

#endif /* {{.Guard}} */
`))

// Emit writes the C header for entry. False flags are left undefined so
// consumers can test them with #ifdef.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, opts registry.Options) error {
	logger := ctxlog.FromContext(ctx)

	data := headerData{
		Unit:     entry.Unit,
		ID:       entry.ID,
		Guard:    Guard(opts.Prefix, entry.Unit),
		Level:    opts.Name("STANDARD_LEVEL"),
		LevelMin: opts.Name("STANDARD_LEVEL_MIN"),
	}
	for _, c := range entry.Record.Constants(entry.ID) {
		d := define{Name: opts.Name(c.Name), Group: c.Group}
		switch c.Kind {
		case platform.KindBool:
			if !c.Bool {
				continue
			}
			d.Value = "1"
		case platform.KindInt:
			d.Value = strconv.FormatInt(c.Int, 10)
		default:
			d.Value = strconv.Quote(c.Str)
		}
		d.Default = c.Name == "STANDARD_LEVEL_MIN"
		data.Defines = append(data.Defines, d)
	}

	logger.Debug("Rendering C header.", "unit", entry.Unit, "guard", data.Guard, "defines", len(data.Defines))
	if err := headerTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render header for %s: %w", entry.Unit, err)
	}
	return nil
}

// Guard derives the include guard from the constant prefix and the unit name.
func Guard(prefix, unit string) string {
	if prefix == "" {
		prefix = "PLATFORMID_"
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(prefix + unit + "_H") {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	guard := b.String()
	if guard[0] >= '0' && guard[0] <= '9' {
		guard = "_" + guard
	}
	return guard
}
