package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Code.Sprint("yap init")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "yap init", "`yap init`"},
		{"Path has no decoration", Path, "/home/u/.yap/vault", "/home/u/.yap/vault"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Name adds quotes", Name, "github", "'github'"},
		{"Muted adds parentheses", Muted, "empty", "(empty)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := Code.Sprintf("yap get %s", "github")
	want := "`yap get github`"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestStatusLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Done("Secret saved"); got != "✓ Secret saved" {
		t.Errorf("Done() = %q", got)
	}

	if got := Fail("Could not open secret", nil); got != "✗ Could not open secret" {
		t.Errorf("Fail() without error = %q", got)
	}

	got := Fail("Could not open secret", errors.New("cannot decrypt"))
	want := "✗ Could not open secret\nError: cannot decrypt"
	if got != want {
		t.Errorf("Fail() = %q, want %q", got, want)
	}

	if got := Next("Run", "yap init"); got != "→ Run `yap init`" {
		t.Errorf("Next() = %q", got)
	}
}

func TestFormatList(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := FormatList([]string{"aws", "github"}, Name)
	want := "    - 'aws'\n    - 'github'\n"
	if got != want {
		t.Errorf("FormatList() = %q, want %q", got, want)
	}

	if got := FormatList(nil, Name); got != "" {
		t.Errorf("FormatList(nil) = %q, want empty", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":     "\n",
		"a":    "a\n",
		"a\n":  "a\n",
		"a\nb": "a\nb\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNoColorFunction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}
