//go:build darwin

package launch

import (
	"fmt"
	"os/exec"

	"github.com/debug-here/debughere/pkg/config"
	"github.com/debug-here/debughere/pkg/logflags"
)

// New returns the strategy for the running platform.
func New(conf *config.Config) Strategy {
	return &darwinStrategy{conf: conf, log: logflags.LaunchLogger()}
}

// darwinStrategy drives Terminal.app through osascript. macOS will not
// put a new terminal window in our process tree, so the attach sequence
// is baked into the automation script instead of the environment and
// the wrapper is never involved.
type darwinStrategy struct {
	conf *config.Config
	log  logflags.Logger
}

func (s *darwinStrategy) CheckSanity() error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("can't find osascript. Bailing.")
	}
	return nil
}

func (s *darwinStrategy) ResolveBinaries(debugger string) error {
	if _, err := exec.LookPath(debugger); err != nil {
		return fmt.Errorf("can't find %s on your path. Bailing.", debugger)
	}
	return nil
}

func (s *darwinStrategy) Launch(debugger string, pid int) error {
	args, err := DebuggerArgs(debugger, pid)
	if err != nil {
		return err
	}

	// The do script line goes through a shell, so the argument vector
	// has to be re-quoted into a command line.
	script := fmt.Sprintf(`tell app "Terminal"
    do script "exec %s %s"
end tell`, debugger, JoinScriptArgs(args))
	s.log.WithField("script", script).Debug("driving Terminal.app")

	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s in Terminal.app: %v", debugger, err)
	}
	cmd.Process.Release()
	return nil
}
