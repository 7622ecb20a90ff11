// Package lifeline implements the handshake message exchanged between a
// debuggee and the debug-here-wrapper process.
//
// The message travels in a single environment variable so that only
// children of the debuggee can ever see it. It is written by the
// debuggee immediately before it spawns a terminal, removed from the
// debuggee's own environment immediately after the spawn, and read
// exactly once (then removed again) by the wrapper.
package lifeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnvVar is the environment variable the message travels in.
const EnvVar = "DEBUG_HERE_LIFELINE"

// MaxVersion is the newest protocol version this codebase understands.
//
// Version 1 carries "<version>,<pid>" and implies the platform default
// debugger. Version 2 adds a third token naming the debugger backend.
const MaxVersion = 2

// Message is a decoded lifeline.
type Message struct {
	// Version is the protocol version the sender encoded.
	Version int
	// PID is the process to attach to.
	PID int
	// Debugger is the backend name carried by version 2 messages.
	// It is empty for version 1, where the platform default is implied.
	Debugger string
}

// Decode errors. These are user-facing: the wrapper prints them
// verbatim into the terminal it is keeping open.
var (
	ErrMissingVersion  = errors.New("lifeline is missing the version number")
	ErrMissingPID      = errors.New("lifeline is missing the pid")
	ErrMissingDebugger = errors.New("lifeline declares version 2 or later but does not name a debugger")
)

// BadVersionError means the version token was present but could not be
// parsed as a number.
type BadVersionError struct {
	Token string
	Err   error
}

func (e *BadVersionError) Error() string {
	return fmt.Sprintf("could not parse lifeline version %q: %v", e.Token, e.Err)
}

func (e *BadVersionError) Unwrap() error { return e.Err }

// BadPIDError means the pid token was present but could not be parsed
// as a number.
type BadPIDError struct {
	Token string
	Err   error
}

func (e *BadPIDError) Error() string {
	return fmt.Sprintf("could not parse lifeline pid %q: %v", e.Token, e.Err)
}

func (e *BadPIDError) Unwrap() error { return e.Err }

// UnsupportedVersionError means the message was produced by a newer
// debuggee than this wrapper understands. The only safe response is to
// tell the operator to upgrade; guessing a fallback would mean running
// the wrong unstick sequence against a live process.
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("lifeline version %d is newer than this wrapper understands (max %d); upgrade debug-here-wrapper", e.Version, MaxVersion)
}

// Encode builds the wire form of a lifeline.
//
// Version 1 omits the debugger token; version 2 and later require it.
// Encode trusts its caller to pass a version/debugger combination that
// is valid per the rules above, since both call sites are in this
// repository.
func Encode(version, pid int, debugger string) string {
	if version == 1 {
		return fmt.Sprintf("%d,%d", version, pid)
	}
	return fmt.Sprintf("%d,%d,%s", version, pid, debugger)
}

// Decode parses the wire form of a lifeline.
//
// A message with a version lower than MaxVersion is still honored in
// full; a message with a higher version is rejected with
// *UnsupportedVersionError.
func Decode(s string) (Message, error) {
	tokens := strings.Split(s, ",")

	if len(tokens) < 1 || tokens[0] == "" {
		return Message{}, ErrMissingVersion
	}
	version, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Message{}, &BadVersionError{Token: tokens[0], Err: err}
	}

	if len(tokens) < 2 || tokens[1] == "" {
		return Message{}, ErrMissingPID
	}
	pid, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Message{}, &BadPIDError{Token: tokens[1], Err: err}
	}

	if version > MaxVersion {
		return Message{}, &UnsupportedVersionError{Version: version}
	}

	msg := Message{Version: version, PID: pid}
	if version >= 2 {
		if len(tokens) < 3 || tokens[2] == "" {
			return Message{}, ErrMissingDebugger
		}
		msg.Debugger = tokens[2]
	}
	return msg, nil
}

// DebuggerOrDefault returns the debugger the message names, or def for
// version 1 messages, which leave the choice to the platform.
func (m Message) DebuggerOrDefault(def string) string {
	if m.Debugger == "" {
		return def
	}
	return m.Debugger
}
