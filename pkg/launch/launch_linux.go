//go:build linux

package launch

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/debug-here/debughere/pkg/config"
	"github.com/debug-here/debughere/pkg/lifeline"
	"github.com/debug-here/debughere/pkg/logflags"
)

// New returns the strategy for the running platform.
func New(conf *config.Config) Strategy {
	return &linuxStrategy{conf: conf, log: logflags.LaunchLogger()}
}

// linuxStrategy spawns a terminal emulator found on PATH. A terminal
// that can exec a command directly (alacritty) runs the debugger
// itself; anything else runs the wrapper, which picks the handshake up
// from the environment.
type linuxStrategy struct {
	conf *config.Config
	log  logflags.Logger

	term       string   // resolved terminal path
	direct     bool     // terminal execs the debugger without the wrapper hop
	customArgv []string // from terminal-command; always wrapper mode
}

const ptraceScopePath = "/proc/sys/kernel/yama/ptrace_scope"

const ptraceScopeAdvice = `ptrace_scope must be set to 0 for debug-here to work.
This will allow any process with a given uid to rummage around
in the memory of any other process with the same uid, so there
are some security risks. To set ptrace_scope for just this
session you can do:

    echo 0 | sudo tee ` + ptraceScopePath + `

Giving up on debugging for now.`

func (s *linuxStrategy) CheckSanity() error {
	contents, err := ioutil.ReadFile(ptraceScopePath)
	if err != nil || len(contents) < 1 || contents[0] != '0' {
		return errors.New(ptraceScopeAdvice)
	}
	return nil
}

var defaultTerminals = []string{"alacritty", "xterm"}

func (s *linuxStrategy) ResolveBinaries(debugger string) error {
	if _, err := exec.LookPath(debugger); err != nil {
		return fmt.Errorf("can't find %s on your path. Bailing.", debugger)
	}

	customArgv, err := s.conf.TerminalArgv()
	if err != nil {
		// A broken terminal-command falls back to discovery; the host
		// program must not lose its debug request over a config typo.
		s.log.WithError(err).Warn("ignoring terminal-command from config")
	} else if len(customArgv) > 0 {
		if _, err := exec.LookPath(customArgv[0]); err != nil {
			return fmt.Errorf("can't find %s (from terminal-command) on your path. Bailing.", customArgv[0])
		}
		s.customArgv = customArgv
	}

	if s.customArgv == nil {
		terminals := s.conf.Terminal
		if len(terminals) == 0 {
			terminals = defaultTerminals
		}
		for _, term := range terminals {
			path, err := exec.LookPath(term)
			if err != nil {
				continue
			}
			s.term = path
			s.direct = filepath.Base(path) == "alacritty"
			break
		}
		if s.term == "" {
			return fmt.Errorf("can't find any of %s on your path. Those are the only terminal emulators currently supported on linux.",
				strings.Join(terminals, ", "))
		}
	}

	if !s.isDirect() {
		if _, err := exec.LookPath(WrapperBin); err != nil {
			return fmt.Errorf("can't find %s on your path. To get it you can run `go install github.com/debug-here/debughere/cmd/debug-here-wrapper@latest`", WrapperBin)
		}
	}
	return nil
}

func (s *linuxStrategy) isDirect() bool {
	return s.direct && s.customArgv == nil
}

// command builds the spawn argv. Direct mode bakes the whole attach
// sequence into the terminal's own argument vector; wrapper mode passes
// nothing but the wrapper name, because the handshake travels solely in
// the environment.
func (s *linuxStrategy) command(debugger string, pid int) (string, []string, error) {
	if s.customArgv != nil {
		args := append(append([]string{}, s.customArgv[1:]...), WrapperBin)
		return s.customArgv[0], args, nil
	}
	if s.direct {
		args, err := DebuggerArgs(debugger, pid)
		if err != nil {
			return "", nil, err
		}
		return s.term, append([]string{"-e", debugger}, args...), nil
	}
	return s.term, []string{WrapperBin}, nil
}

func (s *linuxStrategy) Launch(debugger string, pid int) error {
	name, args, err := s.command(debugger, pid)
	if err != nil {
		return err
	}

	// The lifeline rides an environment variable so that only our own
	// children ever get to see it. It must not outlive the spawn.
	payload := lifelinePayload(debugger, pid)
	s.log.WithField("lifeline", payload).Debug("arming the environment")
	os.Setenv(lifeline.EnvVar, payload)
	defer os.Unsetenv(lifeline.EnvVar)

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s in %s: %v", debugger, name, err)
	}
	// The terminal lives on its own; we will never wait for it.
	cmd.Process.Release()
	return nil
}
