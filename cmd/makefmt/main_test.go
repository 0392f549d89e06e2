package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_When_NoCommand(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "no command specified")
}

func TestRun_When_HelpRequested(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		code, stdout, stderr := runCLI(t, arg)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "Usage")
		assert.Contains(t, stdout, "-raw")
		assert.NotContains(t, stderr, "Usage")
	}
}

func TestRun_When_BadFlag_UsageStaysOffStdout(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--no-such-flag", "make")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no-such-flag")
}

func TestRun_When_NotAMakeCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "cargo", "build")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "not a make command")
}

func TestRun_When_RunTarget_Refused(t *testing.T) {
	for _, target := range []string{"run", "runraw"} {
		code, _, stderr := runCLI(t, "make", target)
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr, "run directly")
	}
}

func TestRun_When_ConfigUnreadable(t *testing.T) {
	code, _, stderr := runCLI(t, "--config", t.TempDir(), "make")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "makefmt:")
}

func TestValidateCommand_HelpGoesToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	code, done := validateCommand([]string{"--help"}, &out, &errOut)
	assert.True(t, done)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage")
	assert.Empty(t, errOut.String())
}

func TestRun_When_OnlyFlagsGiven(t *testing.T) {
	// --raw alone still fails validation: no command follows.
	code, _, stderr := runCLI(t, "--raw")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "no command specified")
}
