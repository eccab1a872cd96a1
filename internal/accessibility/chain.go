// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessibility

import (
	"fmt"

	"github.com/plainread/plainread/pkg/types"
)

// registry lists the built-in modules in declaration order. The order only
// affects listings; execution order is always the caller's request order.
var registry = []Module{
	&ADHDModule{},
	&DyslexiaModule{},
	&AutismModule{},
	&VisualModule{},
	&BeginnerModule{},
	&ESLModule{},
	&AudioModule{},
	&MedicalModule{},
	&EducationModule{},
	&PsychologyModule{},
}

// Lookup returns the registered module with the given name.
func Lookup(name string) (Module, bool) {
	for _, m := range registry {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Modules returns the registered modules in declaration order.
func Modules() []Module {
	out := make([]Module, len(registry))
	copy(out, registry)
	return out
}

// ChainResult holds the outcome of running a module chain.
type ChainResult struct {
	// Text is the final text after every successful module ran.
	Text string

	// Outputs holds per-module auxiliary elements in execution order.
	Outputs []types.ModuleOutput

	// Applied lists the modules that ran successfully, in execution order.
	Applied []string

	// Warnings records unknown names and module failures.
	Warnings []types.Warning
}

// Run executes the named modules in the caller's order. Each module consumes
// the previous module's output text, so the order is significant and is
// preserved in Outputs. Unknown names and module errors are recorded as
// warnings: a failed module contributes no text change and an empty auxiliary
// map, and the chain continues. Run never fails.
func Run(text string, names []string, ctx Context) ChainResult {
	result := ChainResult{Text: text}
	for _, name := range names {
		mod, ok := Lookup(name)
		if !ok {
			result.Warnings = append(result.Warnings, types.Warning{
				Module:  name,
				Message: fmt.Sprintf("unknown accessibility module %q, skipped", name),
			})
			continue
		}

		processed, err := mod.Process(result.Text, ctx)
		if err != nil {
			result.Warnings = append(result.Warnings, types.Warning{
				Module:  name,
				Message: fmt.Sprintf("module %q failed: %v", name, err),
			})
			continue
		}

		aux, err := mod.Supplementary(processed, ctx)
		if err != nil {
			// The text rewrite already succeeded; keep it and record
			// the supplementary failure.
			result.Warnings = append(result.Warnings, types.Warning{
				Module:  name,
				Message: fmt.Sprintf("module %q supplementary elements failed: %v", name, err),
			})
			aux = types.Aux{}
		}

		result.Text = processed
		result.Outputs = append(result.Outputs, types.ModuleOutput{Module: name, Aux: aux})
		result.Applied = append(result.Applied, name)
	}
	return result
}
