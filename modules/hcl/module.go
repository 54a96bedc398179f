// Package hcl renders a resolved build unit as an HCL block, so generated
// records can be read back by HCL-based tooling.
package hcl

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
	"github.com/zclconf/go-cty/cty"
)

// BlockType is the type of the block written for each unit.
const BlockType = "platform"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "hcl" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("hcl", &registry.RegisteredEmitter{Ext: ".hcl", Separator: "\n", Fn: Emit})
}

// ctyValue converts a constant to its cty equivalent.
func ctyValue(c platform.Constant) cty.Value {
	switch c.Kind {
	case platform.KindBool:
		return cty.BoolVal(c.Bool)
	case platform.KindInt:
		return cty.NumberIntVal(c.Int)
	default:
		return cty.StringVal(c.Str)
	}
}

// Emit writes entry as `platform "<unit>" { NAME = value ... }`.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, opts registry.Options) error {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock(BlockType, []string{entry.Unit})
	body := block.Body()

	group := ""
	for _, c := range entry.Record.Constants(entry.ID) {
		if c.Group != group {
			if group != "" {
				body.AppendNewline()
			}
			group = c.Group
		}
		body.SetAttributeValue(opts.Name(c.Name), ctyValue(c))
	}

	ctxlog.FromContext(ctx).Debug("Writing HCL block.", "unit", entry.Unit, "attributes", len(body.Attributes()))
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s as HCL: %w", entry.Unit, err)
	}
	return nil
}
