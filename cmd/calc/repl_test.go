package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// outputs возвращает ответы REPL без приглашений
func outputs(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "> ", ""))
		if line != "" && line != ">" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestREPL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"precedence", "2+3*4\n", []string{"14"}},
		{"chain result", "2+3\n*4\n", []string{"5", "20"}},
		{"new number resets", "2+3\n7-1\n", []string{"5", "6"}},
		{"negative chain", "1-4\n*2\n", []string{"-3", "-6"}},
		{"operator replaced", "5+*2\n", []string{"10"}},
		{"backspace", "12<3+1\n", []string{"14"}},
		{"clear", "5+5c\n", []string{"0"}},
		{"quit", "1+1\nq\n2+2\n", []string{"2"}},
		{"empty lines", "\n\n3\n", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runREPL(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("runREPL failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, outputs(out.String())); diff != "" {
				t.Errorf("REPL output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestREPLErrorKeepsBuffer(t *testing.T) {
	var out bytes.Buffer
	if err := runREPL(strings.NewReader("8/0\n<2\n"), &out); err != nil {
		t.Fatalf("runREPL failed: %v", err)
	}
	got := outputs(out.String())
	if len(got) != 3 {
		t.Fatalf("unexpected output: %q", got)
	}
	if !strings.HasPrefix(got[0], "DivisionByZero") {
		t.Errorf("expected DivisionByZero error, got %q", got[0])
	}
	if got[1] != "8/0" {
		t.Errorf("expected buffer '8/0' to be kept, got %q", got[1])
	}
	if got[2] != "4" {
		t.Errorf("expected '4' after fixing the divisor, got %q", got[2])
	}
}

func TestEvalLines(t *testing.T) {
	var out bytes.Buffer
	err := evalLines(context.Background(), strings.NewReader("1+1\n\n(2+3)*4\n"), &out, localEval)
	if err != nil {
		t.Fatalf("evalLines failed: %v", err)
	}
	if diff := cmp.Diff("2\n20\n", out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	err = evalLines(context.Background(), strings.NewReader("1/0\n3*3\n"), &out, localEval)
	if !errors.Is(err, errFailed) {
		t.Errorf("expected errFailed, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "DivisionByZero") || lines[1] != "9" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "2+2*2"}, "6\n"},
		{[]string{"convert", "--from", "16", "--to", "2", "FF"}, "11111111\n"},
		{[]string{"convert", "--from", "10", "--to", "16", "255.5"}, "FF.8\n"},
		{[]string{"length", "--from", "ft", "--to", "in", "2"}, "24\n"},
		{[]string{"length", "--from", "m", "--to", "ft", "1.8288"}, "6 ft 0 in\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(tt.args)
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("%v: unexpected error %v", tt.args, err)
			continue
		}
		if out.String() != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, out.String())
		}
	}
}
