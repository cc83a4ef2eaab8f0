// Package executor launches the external processes the provisioner
// depends on: the database init script, the per-site WordPress setup
// script, and the process supervisor.
//
// Launches are described by a structured Spec instead of mutating the
// process environment, so the orchestrator never touches os.Setenv and
// tests can assert on exactly what would have been executed.
package executor

import (
	"os"
	"os/exec"
	"sort"
)

// Spec describes one process launch.
type Spec struct {
	Program string            // executable name or path
	Args    []string          // arguments, excluding the program itself
	Dir     string            // working directory; empty means inherit
	Env     map[string]string // overlaid on the inherited environment
}

// Handle is a running process that can be waited on.
type Handle interface {
	// Wait blocks until the process exits and returns its exit error.
	Wait() error
}

// Launcher starts external processes.
type Launcher interface {
	// Run starts the process and blocks until it exits.
	Run(spec Spec) error

	// Start launches the process detached and returns a waitable handle.
	Start(spec Spec) (Handle, error)
}

// SystemLauncher implements Launcher using os/exec. Child stdout and
// stderr are inherited so their output lands in the container log.
type SystemLauncher struct{}

// NewSystemLauncher creates a new SystemLauncher.
func NewSystemLauncher() *SystemLauncher {
	return &SystemLauncher{}
}

// Run starts the process and blocks until it exits.
func (l *SystemLauncher) Run(spec Spec) error {
	return l.command(spec).Run()
}

// Start launches the process and returns a handle to wait on.
func (l *SystemLauncher) Start(spec Spec) (Handle, error) {
	cmd := l.command(spec)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &processHandle{cmd: cmd}, nil
}

// command builds the exec.Cmd for a spec.
func (l *SystemLauncher) command(spec Spec) *exec.Cmd {
	cmd := exec.Command(spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = MergeEnv(os.Environ(), spec.Env)
	return cmd
}

// processHandle wraps a started exec.Cmd.
type processHandle struct {
	cmd *exec.Cmd
}

// Wait blocks until the process exits.
func (h *processHandle) Wait() error {
	return h.cmd.Wait()
}

// MergeEnv appends overlay entries to a base environment in sorted key
// order. Later entries win in os/exec, so overlay values override
// inherited ones.
func MergeEnv(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, len(base), len(base)+len(keys))
	copy(env, base)
	for _, k := range keys {
		env = append(env, k+"="+overlay[k])
	}
	return env
}

// MockLauncher is a mock implementation for testing.
type MockLauncher struct {
	RunFunc   func(spec Spec) error
	StartFunc func(spec Spec) (Handle, error)
	Runs      []Spec // specs passed to Run, in order
	Starts    []Spec // specs passed to Start, in order
}

// Run records the spec and calls the mock function.
func (m *MockLauncher) Run(spec Spec) error {
	m.Runs = append(m.Runs, spec)
	if m.RunFunc != nil {
		return m.RunFunc(spec)
	}
	return nil
}

// Start records the spec and calls the mock function.
func (m *MockLauncher) Start(spec Spec) (Handle, error) {
	m.Starts = append(m.Starts, spec)
	if m.StartFunc != nil {
		return m.StartFunc(spec)
	}
	return &MockHandle{}, nil
}

// MockHandle is a waitable handle for tests.
type MockHandle struct {
	WaitFunc func() error
	Waited   bool
}

// Wait records the call and returns the configured result.
func (h *MockHandle) Wait() error {
	h.Waited = true
	if h.WaitFunc != nil {
		return h.WaitFunc()
	}
	return nil
}
