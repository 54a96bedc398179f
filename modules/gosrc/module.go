// Package gosrc renders a resolved build unit as Go constants.
package gosrc

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// DefaultPackage is used when no package name is configured.
const DefaultPackage = "platform"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "go" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("go", &registry.RegisteredEmitter{Ext: ".go", Separator: "\n", Fn: Emit})
}

type constLine struct {
	Name  string
	Value string
	Group string
}

var srcTmpl = template.Must(template.New("gosrc").Parse(`// Code generated by platformid. DO NOT EDIT.

// Package {{.Package}} describes the build unit {{printf "%q" .Unit}}.
package {{.Package}}

const (
{{- $group := ""}}
{{- range .Consts}}
{{- if ne .Group $group}}{{$group = .Group}}

	// {{.Group}}
{{- end}}
	{{.Name}} = {{.Value}}
{{- end}}
)
`))

// Emit writes a gofmt-formatted Go file declaring every constant of entry.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, opts registry.Options) error {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid Go package name %q", pkg)
	}

	var consts []constLine
	for _, c := range entry.Record.Constants(entry.ID) {
		line := constLine{Name: GoName(opts.Name(c.Name)), Group: c.Group}
		switch c.Kind {
		case platform.KindBool:
			line.Value = strconv.FormatBool(c.Bool)
		case platform.KindInt:
			line.Value = strconv.FormatInt(c.Int, 10)
		default:
			line.Value = strconv.Quote(c.Str)
		}
		consts = append(consts, line)
	}

	var buf bytes.Buffer
	err := srcTmpl.Execute(&buf, map[string]any{
		"Package": pkg,
		"Unit":    entry.Unit,
		"Consts":  consts,
	})
	if err != nil {
		return fmt.Errorf("failed to render Go source for %s: %w", entry.Unit, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format Go source for %s: %w", entry.Unit, err)
	}
	ctxlog.FromContext(ctx).Debug("Rendered Go source.", "unit", entry.Unit, "package", pkg, "bytes", len(src))

	_, err = w.Write(src)
	return err
}

var initialisms = map[string]bool{
	"BSD": true, "CPU": true, "GCC": true, "ID": true,
	"MSVC": true, "OS": true, "SVR4": true,
}

// GoName converts an upper snake case constant name to an exported Go name,
// e.g. COMPILER_MIMICS_GCC becomes CompilerMimicsGCC.
func GoName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		upper := strings.ToUpper(part)
		if initialisms[upper] {
			b.WriteString(upper)
			continue
		}
		lower := strings.ToLower(part)
		b.WriteString(strings.ToUpper(lower[:1]) + lower[1:])
	}
	out := b.String()
	if out == "" || !token.IsIdentifier(out) || !token.IsExported(out) {
		return "X" + out
	}
	return out
}
