package config

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnmarshal(t *testing.T) {
	in := `
terminal: ["kitty", "xterm"]
debugger: lldb
terminal-command: "gnome-terminal --"
`
	var c Config
	if err := yaml.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("expected config to unmarshal; but got error <%v>", err)
	}
	if !reflect.DeepEqual(c.Terminal, []string{"kitty", "xterm"}) {
		t.Fatalf("expected terminal preference to be [kitty xterm]; but was <%v>", c.Terminal)
	}
	if c.Debugger != "lldb" {
		t.Fatalf("expected debugger to be <lldb>; but was <%s>", c.Debugger)
	}
	if c.TerminalCommand != "gnome-terminal --" {
		t.Fatalf("expected terminal-command to be <gnome-terminal -->; but was <%s>", c.TerminalCommand)
	}
}

func TestTerminalArgvEmpty(t *testing.T) {
	c := &Config{}
	args, err := c.TerminalArgv()
	if err != nil {
		t.Fatalf("expected no error for empty terminal-command; but was <%v>", err)
	}
	if args != nil {
		t.Fatalf("expected nil argv for empty terminal-command; but was <%v>", args)
	}
}

func TestTerminalArgvQuoting(t *testing.T) {
	c := &Config{TerminalCommand: `myterm --title "debug here" --`}
	args, err := c.TerminalArgv()
	if err != nil {
		t.Fatalf("expected terminal-command to split; but got error <%v>", err)
	}
	want := []string{"myterm", "--title", "debug here", "--"}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected argv to be <%v>; but was <%v>", want, args)
	}
}

func TestTerminalArgvRejectsPipelines(t *testing.T) {
	c := &Config{TerminalCommand: "myterm | tee log"}
	if _, err := c.TerminalArgv(); err == nil {
		t.Fatalf("expected pipelines to be rejected; but they were not")
	}
}
