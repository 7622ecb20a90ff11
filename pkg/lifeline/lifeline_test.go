package lifeline

import (
	"errors"
	"testing"
)

func TestEncodeVersion1OmitsDebugger(t *testing.T) {
	s := Encode(1, 4242, "")
	if s != "1,4242" {
		t.Fatalf("expected encoded lifeline to be <1,4242>; but was <%s>", s)
	}
}

func TestEncodeVersion2CarriesDebugger(t *testing.T) {
	s := Encode(2, 4242, "lldb")
	if s != "2,4242,lldb" {
		t.Fatalf("expected encoded lifeline to be <2,4242,lldb>; but was <%s>", s)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		version  int
		pid      int
		debugger string
	}{
		{1, 1, ""},
		{1, 65534, ""},
		{2, 555, "gdb"},
		{2, 555, "lldb"},
	} {
		msg, err := Decode(Encode(tc.version, tc.pid, tc.debugger))
		if err != nil {
			t.Fatalf("expected round trip of %v to decode; but got error <%v>", tc, err)
		}
		if msg.Version != tc.version || msg.PID != tc.pid || msg.Debugger != tc.debugger {
			t.Fatalf("expected round trip to reproduce %v; but was %+v", tc, msg)
		}
	}
}

func TestDecodeVersion1DefaultsDebugger(t *testing.T) {
	msg, err := Decode("1,123")
	if err != nil {
		t.Fatalf("expected version 1 lifeline to decode; but got error <%v>", err)
	}
	if got := msg.DebuggerOrDefault("gdb"); got != "gdb" {
		t.Fatalf("expected version 1 debugger to default to <gdb>; but was <%s>", got)
	}
}

func TestDecodeVersion2KeepsExplicitDebugger(t *testing.T) {
	msg, err := Decode("2,123,lldb")
	if err != nil {
		t.Fatalf("expected version 2 lifeline to decode; but got error <%v>", err)
	}
	if got := msg.DebuggerOrDefault("gdb"); got != "lldb" {
		t.Fatalf("expected explicit debugger to win over the default; but was <%s>", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"", ErrMissingVersion},
		{",123", ErrMissingVersion},
		{"1", ErrMissingPID},
		{"1,", ErrMissingPID},
		{"2,123", ErrMissingDebugger},
		{"2,123,", ErrMissingDebugger},
	} {
		_, err := Decode(tc.in)
		if !errors.Is(err, tc.want) {
			t.Fatalf("expected Decode(%q) to fail with <%v>; but was <%v>", tc.in, tc.want, err)
		}
	}
}

func TestDecodeBadVersion(t *testing.T) {
	_, err := Decode("abc,123")
	var badVersion *BadVersionError
	if !errors.As(err, &badVersion) {
		t.Fatalf("expected Decode to fail with *BadVersionError; but was <%v>", err)
	}
	if badVersion.Token != "abc" {
		t.Fatalf("expected the offending token to be <abc>; but was <%s>", badVersion.Token)
	}
}

func TestDecodeBadPID(t *testing.T) {
	_, err := Decode("1,notapid")
	var badPID *BadPIDError
	if !errors.As(err, &badPID) {
		t.Fatalf("expected Decode to fail with *BadPIDError; but was <%v>", err)
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	_, err := Decode("3,123")
	var unsupported *UnsupportedVersionError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected Decode to fail with *UnsupportedVersionError; but was <%v>", err)
	}
	if unsupported.Version != 3 {
		t.Fatalf("expected the rejected version to be <3>; but was <%d>", unsupported.Version)
	}
}

// A version 3 message is rejected before its field set is examined, so
// a missing third token must not be misreported as a missing debugger.
func TestUnsupportedVersionWinsOverMissingDebugger(t *testing.T) {
	_, err := Decode("3,123")
	if errors.Is(err, ErrMissingDebugger) {
		t.Fatalf("expected unsupported-version; but was missing-debugger")
	}
}
