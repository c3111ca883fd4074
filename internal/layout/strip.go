package layout

import (
	"context"
	"fmt"
	"os/exec"
)

// Stripper removes debug symbols from a shared library in place
type Stripper interface {
	Strip(ctx context.Context, path string) error
}

// ExecStripper invokes an external strip executable
type ExecStripper struct {
	Tool string
}

// NewExecStripper creates a stripper around the executable at tool
func NewExecStripper(tool string) *ExecStripper {
	return &ExecStripper{Tool: tool}
}

// Strip runs the strip tool on the file at path. The tool mutates file
// content, not identity: no rename or move ever happens.
func (s *ExecStripper) Strip(ctx context.Context, path string) error {
	out, err := exec.CommandContext(ctx, s.Tool, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", s.Tool, path, err, out)
	}
	return nil
}
