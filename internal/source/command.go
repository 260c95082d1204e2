package source

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/dotcommander/ccpulse/internal/usagelog"
)

// CommandSource runs the external usage tool and reads the log from its
// stdout. The tool owns session tracking; ccpulse only consumes its export.
type CommandSource struct {
	// Command is the executable name or path. Empty means DefaultCommand.
	Command string
}

// NewCommandSource creates a source for the given tool, falling back to the
// default when name is empty.
func NewCommandSource(name string) *CommandSource {
	if name == "" {
		name = DefaultCommand
	}
	return &CommandSource{Command: name}
}

// Fetch locates and runs the tool. A missing executable or a failed run is
// fatal: the surrounding command exits non-zero rather than scoring an empty
// log as zero.
func (s *CommandSource) Fetch() (usagelog.Log, []string, error) {
	path, err := exec.LookPath(s.Command)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%w: %s not found in PATH (install it with: npm install -g %s)",
			ErrUnavailable, s.Command, DefaultCommand)
	}

	out, err := exec.Command(path, "--json").Output()
	if err != nil {
		detail := err.Error()
		if exitErr, ok := err.(*exec.ExitError); ok {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				detail = msg
			}
		}
		return nil, nil, fmt.Errorf("%w: %s --json failed: %s", ErrUnavailable, s.Command, detail)
	}

	return validateAndDecode(out)
}
