package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"github.com/cosiner/argv"
	"gopkg.in/yaml.v2"
)

const (
	configDir  string = ".debughere"
	configFile string = "config.yml"
)

// Config defines all configuration options available to be set through
// the config file. Every field is optional; the zero value means
// "platform default". Neither the debuggee nor the wrapper ever fails
// because of this file: a config that cannot be read or parsed degrades
// to the defaults, since the host program must keep running no matter
// what.
type Config struct {
	// Terminal is the preference-ordered list of terminal emulators to
	// try when spawning the debugger window. Terminals that can exec
	// the debugger directly (alacritty) are used without the wrapper
	// hop; anything else runs debug-here-wrapper inside the terminal.
	Terminal []string `yaml:"terminal"`

	// Debugger overrides the platform default debugger backend.
	Debugger string `yaml:"debugger"`

	// TerminalCommand, when set, replaces terminal discovery entirely:
	// it is a full command line that must open a terminal window and
	// run the command appended to it, e.g. "gnome-terminal --".
	// Quoted tokens survive splitting.
	TerminalCommand string `yaml:"terminal-command"`
}

// TerminalArgv returns TerminalCommand split into an argument vector.
// Splitting honors shell-style quoting so a token containing spaces
// reaches the terminal as one argument.
func (c *Config) TerminalArgv() ([]string, error) {
	if c.TerminalCommand == "" {
		return nil, nil
	}
	v, err := argv.Argv(c.TerminalCommand,
		func(s string) (string, error) {
			return "", fmt.Errorf("backtick not supported in %q", s)
		},
		nil)
	if err != nil {
		return nil, err
	}
	if len(v) != 1 {
		return nil, fmt.Errorf("pipelines are not supported in terminal-command %q", c.TerminalCommand)
	}
	return v[0], nil
}

// LoadConfig attempts to populate a Config object from the config.yml file.
func LoadConfig() *Config {
	err := createConfigPath()
	if err != nil {
		fmt.Printf("Could not create config directory: %v.", err)
		return &Config{}
	}
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		fmt.Printf("Unable to get config file path: %v.", err)
		return &Config{}
	}

	f, err := os.Open(fullConfigFile)
	if err != nil {
		f, err = createDefaultConfig(fullConfigFile)
		if err != nil {
			fmt.Printf("Error creating default config file: %v", err)
			return &Config{}
		}
	}
	defer func() {
		err := f.Close()
		if err != nil {
			fmt.Printf("Closing config file failed: %v.", err)
		}
	}()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		fmt.Printf("Unable to read config data: %v.", err)
		return &Config{}
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		fmt.Printf("Unable to decode config file: %v.", err)
		return &Config{}
	}

	return &c
}

func createDefaultConfig(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create config file: %v", err)
	}
	err = writeDefaultConfig(f)
	if err != nil {
		return nil, fmt.Errorf("unable to write default configuration: %v", err)
	}
	return f, nil
}

func writeDefaultConfig(f *os.File) error {
	_, err := f.WriteString(
		`# Configuration file for debug-here.

# This is the default configuration file. Available options are provided, but disabled.
# Delete the leading hash mark to enable an item.

# Preference-ordered list of terminal emulators to spawn the debugger in.
# Terminals that can exec a command directly (alacritty) skip the
# debug-here-wrapper hop.
# terminal: ["alacritty", "xterm"]

# Debugger backend to use instead of the platform default.
# Supported backends: gdb, lldb.
# debugger: gdb

# Full custom command used to open a terminal window running the command
# appended to it. Overrides terminal discovery entirely.
# terminal-command: "gnome-terminal --"
`)
	return err
}

// createConfigPath creates the directory structure at which all config files are saved.
func createConfigPath() error {
	path, err := GetConfigFilePath("")
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0700)
}

// GetConfigFilePath gets the full path to the given config file name.
func GetConfigFilePath(file string) (string, error) {
	userHomeDir := "."
	usr, err := user.Current()
	if err == nil {
		userHomeDir = usr.HomeDir
	}
	return path.Join(userHomeDir, configDir, file), nil
}
