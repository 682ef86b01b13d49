package builder

import (
	"os"
	"os/exec"
	"strings"

	"github.com/hudengine/hudbuild/internal/msg"
)

// Command is a single external tool invocation. Name and Args are passed to
// the tool verbatim; Dir is the working directory.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// Argv returns the full command line as a single slice.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	argv = append(argv, c.Args...)
	return argv
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Runner executes external commands. The build orchestrator only talks to
// conan and cmake through this interface; tests substitute a recorder.
type Runner interface {
	Run(c Command) error
}

// ExecRunner runs commands on the host, streaming their output indented
// under the tool's own messages.
type ExecRunner struct{}

func (ExecRunner) Run(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = &msg.IndentWriter{Indent: "    ", W: os.Stdout}
	cmd.Stderr = &msg.IndentWriter{Indent: "    ", W: os.Stderr}
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
