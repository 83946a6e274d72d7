// pre_processor.go implements the WGSL include pre-processor. Shader sources reference shared
// struct definitions with single-line directives of the form
//
//	//@include camera
//
// which are replaced with the registered WGSL text. The struct sources themselves are embedded
// next to the Go types that marshal them, so a GPU layout change is made in exactly one place.
package shader

import (
	"fmt"
	"strings"
)

// includePrefix marks an include directive within a WGSL comment line.
const includePrefix = "//@include"

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// includes maps include names to the WGSL text injected in their place.
	includes map[string]string
}

// PreProcessor expands include directives in raw WGSL shader source.
type PreProcessor interface {
	// Process replaces every include directive with its registered WGSL text.
	// Lines that are not directives are kept as they are.
	//
	// Parameters:
	//   - source: the raw WGSL shader source code
	//
	// Returns:
	//   - string: the expanded WGSL source
	//   - error: an error if a directive is malformed or names an unregistered include
	Process(source string) (string, error)
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor resolving directives against the given includes.
//
// Parameters:
//   - includes: include names mapped to their WGSL text
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(includes map[string]string) PreProcessor {
	return &preProcessor{includes: includes}
}

func (p *preProcessor) Process(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), includePrefix)
		if !ok {
			out = append(out, line)
			continue
		}

		args := strings.Fields(rest)
		if len(args) != 1 {
			return "", fmt.Errorf("line %d: include expects exactly one name, got %d", i+1, len(args))
		}
		src, ok := p.includes[args[0]]
		if !ok {
			return "", fmt.Errorf("line %d: unknown include %q", i+1, args[0])
		}
		out = append(out, strings.TrimRight(src, "\n"))
	}
	return strings.Join(out, "\n"), nil
}
