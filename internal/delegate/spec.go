// SPDX-License-Identifier: MPL-2.0

package delegate

import (
	"slices"

	"github.com/iechor-research/research-launcher/internal/discovery"
)

// DefaultInterpreter is the program used to execute the Research CLI module.
const DefaultInterpreter = "node"

// LaunchSpec is the fully determined invocation for one run. It is built
// once and never mutated.
type LaunchSpec struct {
	interpreter string
	modulePath  string
	args        []string
	installRoot string
}

// NewLaunchSpec builds a LaunchSpec. An empty interpreter selects
// DefaultInterpreter. args are copied and kept in order, byte for byte.
// installRoot may be empty when no root was inferred.
func NewLaunchSpec(interpreter, modulePath string, args []string, installRoot string) *LaunchSpec {
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}
	return &LaunchSpec{
		interpreter: interpreter,
		modulePath:  modulePath,
		args:        slices.Clone(args),
		installRoot: installRoot,
	}
}

// Interpreter returns the program to spawn.
func (s *LaunchSpec) Interpreter() string { return s.interpreter }

// ModulePath returns the absolute path of the module passed to the interpreter.
func (s *LaunchSpec) ModulePath() string { return s.modulePath }

// Args returns a copy of the forwarded arguments.
func (s *LaunchSpec) Args() []string { return slices.Clone(s.args) }

// InstallRoot returns the inferred install root, if any.
func (s *LaunchSpec) InstallRoot() (string, bool) {
	return s.installRoot, s.installRoot != ""
}

// Argv returns the child's arguments after the interpreter: the module path
// followed by every forwarded argument. A spec without a module path (the
// version probe) yields the arguments alone.
func (s *LaunchSpec) Argv() []string {
	argv := make([]string, 0, len(s.args)+1)
	if s.modulePath != "" {
		argv = append(argv, s.modulePath)
	}
	return append(argv, s.args...)
}

// CommandLine returns the interpreter followed by Argv.
func (s *LaunchSpec) CommandLine() []string {
	return append([]string{s.interpreter}, s.Argv()...)
}

// Environ returns the child environment derived from the caller's environ.
// The inferred install root is appended as $RESEARCH_CLI_HOME only when the
// caller's environment lacks the variable entirely; any caller setting, even
// an empty one, is passed through untouched.
func (s *LaunchSpec) Environ(environ []string) []string {
	env := slices.Clone(environ)
	if s.Injects(environ) {
		env = append(env, discovery.OverrideEnvVar+"="+s.installRoot)
	}
	return env
}

// Injects reports whether Environ would add $RESEARCH_CLI_HOME to environ.
func (s *LaunchSpec) Injects(environ []string) bool {
	return s.installRoot != "" && !hasKey(environ, discovery.OverrideEnvVar)
}

func hasKey(environ []string, key string) bool {
	prefix := key + "="
	for _, kv := range environ {
		if len(kv) >= len(prefix) && envKeyEqual(kv[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}
