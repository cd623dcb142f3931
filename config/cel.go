package config

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// PageVars are the variables a default condition may reference: the page
// title and body, the declared type (exposed to expressions as pageType,
// "" when absent), and the zero-based page index.
type PageVars struct {
	Title string
	Body  string
	Type  string
	Index int
}

// Decision is the outcome of evaluating the default conditions for a page.
type Decision struct {
	Type string
	Skip bool
}

var celEnv *cel.Env

func init() {
	var err error
	celEnv, err = cel.NewEnv(
		cel.Variable("title", cel.StringType),
		cel.Variable("body", cel.StringType),
		// "type" is a reserved CEL identifier, so the declared page type
		// is exposed as pageType.
		cel.Variable("pageType", cel.StringType),
		cel.Variable("index", cel.IntType),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create CEL environment: %v", err))
	}
}

// Apply evaluates the conditions in order against a page. The first match
// that sets a type wins; skip conditions short-circuit immediately.
func (c *Config) Apply(vars PageVars) (*Decision, error) {
	d := &Decision{Type: vars.Type}
	for _, cond := range c.Defaults {
		ok, err := evalCondition(cond.If, vars)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if cond.Skip != nil && *cond.Skip {
			d.Skip = true
			return d, nil
		}
		if cond.Type != "" && d.Type == "" {
			d.Type = cond.Type
			return d, nil
		}
	}
	return d, nil
}

func evalCondition(expr string, vars PageVars) (bool, error) {
	ast, issues := celEnv.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("condition compilation error for '%s': %w", expr, issues.Err())
	}
	prg, err := celEnv.Program(ast)
	if err != nil {
		return false, fmt.Errorf("condition program creation error for '%s': %w", expr, err)
	}
	out, _, err := prg.Eval(map[string]any{
		"title":    vars.Title,
		"body":     vars.Body,
		"pageType": vars.Type,
		"index":    vars.Index,
	})
	if err != nil {
		return false, fmt.Errorf("condition evaluation error for '%s': %w", expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition '%s' did not evaluate to a boolean", expr)
	}
	return b, nil
}
