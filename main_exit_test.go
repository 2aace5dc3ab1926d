package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain lets the test binary stand in for the anscheck binary: with
// ANSCHECK_RUN_MAIN set it runs main with its arguments and exits.
func TestMain(m *testing.M) {
	if os.Getenv("ANSCHECK_RUN_MAIN") != "" {
		main()
		os.Exit(exitPass)
	}
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	saved := stdinIsInteractive
	stdinIsInteractive = func() bool { return false }
	t.Cleanup(func() { stdinIsInteractive = saved })

	passing := strings.Join(DefaultAnswerKey.Answers, "\n")

	tests := []struct {
		name       string
		args       []string
		output     *string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "all answers found", output: &passing, wantCode: exitPass, wantStdout: "ALL TESTS PASSED\n"},
		{name: "answer missing", output: ptr("RECURSION_TEST 1 13"), wantCode: exitFail, wantStdout: "FAIL  =   Foo\nTEST FAILED\n"},
		{name: "missing output file", wantCode: exitError, wantStderr: "anscheck: program output output.txt not found"},
		{name: "two arguments", args: []string{"a.txt", "b.txt"}, wantCode: exitError, wantStderr: "anscheck: too many arguments"},
		{name: "unknown flag", args: []string{"-bogus"}, wantCode: exitError, wantStderr: "flag provided but not defined: -bogus"},
		{name: "help", args: []string{"-h"}, wantCode: exitPass, wantStderr: "usage: anscheck"},
		{name: "bad encoding", args: []string{"-encoding", "latin1"}, output: &passing, wantCode: exitError, wantStderr: `anscheck: unknown encoding "latin1"`},
		{name: "stdin", args: []string{"-encoding", "utf-8", "-"}, stdin: "Foo", wantCode: exitFail, wantStdout: "PASS  =   Foo\nTEST FAILED\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			wd, err := os.Getwd()
			if err != nil {
				t.Fatal(err)
			}
			if err := os.Chdir(dir); err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { os.Chdir(wd) })
			if tt.output != nil {
				writeUTF16(t, dir, *tt.output)
			}

			var stdout, stderr bytes.Buffer
			args := append([]string{"-color", "never"}, tt.args...)
			code := run(args, strings.NewReader(tt.stdin), &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run(%q) = %d, want %d\nstderr: %s", args, code, tt.wantCode, stderr.String())
			}
			if !strings.HasSuffix(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want suffix %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunInteractiveStdin(t *testing.T) {
	saved := stdinIsInteractive
	stdinIsInteractive = func() bool { return true }
	t.Cleanup(func() { stdinIsInteractive = saved })

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-"}, strings.NewReader(""), &stdout, &stderr); code != exitError {
		t.Errorf("run(-) on a terminal = %d, want %d", code, exitError)
	}
	if !strings.HasPrefix(stderr.String(), "anscheck: expects program output on stdin\n") {
		t.Errorf("stderr = %q, want the stdin error first", stderr.String())
	}
	if !strings.Contains(stderr.String(), "usage: anscheck") {
		t.Errorf("stderr = %q, want usage", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("report written for terminal stdin: %q", stdout.String())
	}
}

func TestMainExitStatus(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "pass", output: strings.Join(DefaultAnswerKey.Answers, " "), wantCode: exitPass},
		{name: "fail", output: "Foo", wantCode: exitFail},
		{name: "missing file", wantCode: exitError, wantStderr: "anscheck: program output output.txt not found\n"},
		{name: "two arguments", args: []string{"a", "b"}, wantCode: exitError, wantStderr: "anscheck: too many arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.output != "" {
				writeUTF16(t, dir, tt.output)
			}

			cmd := exec.Command(os.Args[0], tt.args...)
			cmd.Dir = dir
			cmd.Env = append(os.Environ(), "ANSCHECK_RUN_MAIN=1")
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running %s: %v", filepath.Base(os.Args[0]), err)
			}
			if code != tt.wantCode {
				t.Errorf("exit status = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.HasPrefix(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want prefix %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func ptr(s string) *string { return &s }
