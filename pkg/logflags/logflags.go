package logflags

import (
	"errors"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var here = false
var launch = false
var wrapper = false

func makeLogger(flag bool, fields Fields) Logger {
	if loggerFactory != nil {
		return loggerFactory(flag, fields, nil)
	}
	logger := logrus.New()
	logger.Out = colorable.NewColorableStderr()
	logger.Formatter = &logrus.TextFormatter{
		ForceColors: isatty.IsTerminal(os.Stderr.Fd()),
	}
	logger.Level = logrus.DebugLevel
	if !flag {
		logger.Level = logrus.PanicLevel
	}
	return &logrusLogger{logger.WithFields(logrus.Fields(fields))}
}

// Here returns true if the debuggee-side orchestration should log.
func Here() bool {
	return here
}

// HereLogger returns a logger for the debuggee-side orchestration.
func HereLogger() Logger {
	return makeLogger(here, Fields{"layer": "here"})
}

// Launch returns true if the terminal/debugger launch strategy should log.
func Launch() bool {
	return launch
}

// LaunchLogger returns a logger for the launch strategy.
func LaunchLogger() Logger {
	return makeLogger(launch, Fields{"layer": "launch"})
}

// Wrapper returns true if the wrapper process should log.
func Wrapper() bool {
	return wrapper
}

// WrapperLogger returns a logger for the wrapper process.
func WrapperLogger() Logger {
	return makeLogger(wrapper, Fields{"layer": "wrapper"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets component logging flags based on the contents of logstr.
//
// It configures only this package's loggers. The process-global stdlib
// logger is left alone: Setup runs inside host programs that merely
// linked the library, and their log output must survive a debug
// request untouched.
func Setup(logFlag bool, logstr string) error {
	if !logFlag {
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "here"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "here":
			here = true
		case "launch":
			launch = true
		case "wrapper":
			wrapper = true
		}
	}
	return nil
}
