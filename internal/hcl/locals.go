package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

var localsSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "locals"}},
}

// evalContext strips locals blocks from body, evaluates them and returns the
// remaining body together with the context to decode it in.
func evalContext(ctx context.Context, body hcl.Body) (hcl.Body, *hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)

	content, remain, diags := body.PartialContent(localsSchema)
	if diags.HasErrors() {
		return nil, nil, diags
	}

	pending := make(map[string]*hcl.Attribute)
	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, nil, diags
		}
		for name, attr := range attrs {
			if _, dup := pending[name]; dup {
				return nil, nil, fmt.Errorf("local '%s' is defined more than once (%s)", name, attr.Range)
			}
			pending[name] = attr
		}
	}

	values := make(map[string]cty.Value, len(pending))
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		Functions: functions(),
	}

	// Locals may reference each other in any order: keep evaluating until a
	// pass makes no progress.
	for len(pending) > 0 {
		var lastDiags hcl.Diagnostics
		progressed := false
		for _, name := range sortedNames(pending) {
			v, diags := pending[name].Expr.Value(evalCtx)
			if diags.HasErrors() {
				lastDiags = diags
				continue
			}
			values[name] = v
			delete(pending, name)
			evalCtx.Variables["local"] = cty.ObjectVal(values)
			progressed = true
		}
		if !progressed {
			return nil, nil, fmt.Errorf("failed to evaluate locals %v: %w", sortedNames(pending), lastDiags)
		}
	}

	logger.Debug("Evaluated HCL locals.", "count", len(values))
	return remain, evalCtx, nil
}

func sortedNames(m map[string]*hcl.Attribute) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
