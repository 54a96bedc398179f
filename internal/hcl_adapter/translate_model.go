// This file contains the logic for translating HCL schema structs into the
// format-agnostic profile model defined in the config package.

package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/platformid/internal/config"
	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateProfile converts the HCL profile schema into the agnostic model.
func (l *Loader) translateProfile(ctx context.Context, file string, p *Profile) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx).With("profile", p.Name, "file", file)
	logger.Debug("Translating HCL profile to internal config model.")

	defines, err := translateDefines(p.Defines)
	if err != nil {
		return nil, fmt.Errorf("profile %q in %s: %w", p.Name, file, err)
	}

	dump := p.Dump
	if dump != "" && dump != "-" && !filepath.IsAbs(dump) {
		dump = filepath.Join(filepath.Dir(file), dump)
		logger.Debug("Resolved relative dump path.", "dump", dump)
	}

	profile := &config.Profile{
		Name:        p.Name,
		Description: p.Description,
		SourceFile:  file,
		StandardMin: p.StandardMin,
		Compiler:    p.Compiler,
		Flags:       p.Flags,
		Dump:        dump,
		Defines:     defines,
		Undefines:   p.Undefines,
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return profile, nil
}

// translateDefines evaluates the `defines` object. Numbers and strings are
// rendered as their text, true as "1", and false entries are dropped.
func translateDefines(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating defines: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, errors.New("defines must be known at load time")
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("defines must be an object, got %s", ty.FriendlyName())
	}

	out := make(map[string]string, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name := k.AsString()
		if v.IsNull() {
			out[name] = ""
			continue
		}
		switch v.Type() {
		case cty.Bool:
			if v.True() {
				out[name] = "1"
			}
		case cty.Number, cty.String:
			s, err := convert.Convert(v, cty.String)
			if err != nil {
				return nil, fmt.Errorf("define %s: %w", name, err)
			}
			out[name] = s.AsString()
		default:
			return nil, fmt.Errorf("define %s must be a string, number or bool, got %s", name, v.Type().FriendlyName())
		}
	}
	return out, nil
}
