package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sdjquiz/internal/testutil"
)

const sampleQuiz = `title: Geography
description: European capitals
author: Tester
questions:
  - uniqueId: q1
    title: France
    text: Pick every name of the capital
    keywords: [geo]
    score: 2
    answers:
      - text: Paris
        correct: true
      - text: Paname
        correct: true
  - uniqueId: q2
    title: Italy
    text: Pick every name of the capital
    keywords: [geo]
    score: 3
    answers:
      - text: Rome
        correct: true
      - text: Roma
        correct: true
`

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SDJQUIZ_NO_COLOR", "SDJQUIZ_LOG_FILE", "SDJQUIZ_LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SDJQUIZ_UI", "plain")
	t.Setenv("SDJQUIZ_SEED", "7")
}

// TestRootHelp verifies help prints usage and exits cleanly.
func TestRootHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		var out, err bytes.Buffer
		code := Run([]string{arg}, strings.NewReader(""), &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", arg, ExitOK, code)
		}
		if err.Len() != 0 {
			t.Fatalf("%s: expected no stderr output, got %q", arg, err.String())
		}
		if !strings.Contains(out.String(), "Usage:") || !strings.Contains(out.String(), "SDJQUIZ_UI") {
			t.Fatalf("%s: expected usage output, got %q", arg, out.String())
		}
	}
}

// TestUnexpectedArgument verifies any other argument is a usage error.
func TestUnexpectedArgument(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"quiz.yml"}, strings.NewReader(""), &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Unexpected argument") || !strings.Contains(err.String(), "Usage:") {
		t.Fatalf("expected usage error, got %q", err.String())
	}
}

// TestPlayThroughPlain verifies a full plain play-through scores every question.
func TestPlayThroughPlain(t *testing.T) {
	isolateEnv(t)
	path := testutil.WriteFile(t, "geo.yml", sampleQuiz)
	input := strings.Join([]string{path, "", "1,2", "", "1,2", ""}, "\n") + "\n"

	var out, err bytes.Buffer
	code := Run(nil, strings.NewReader(input), &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	output := out.String()
	for _, want := range []string{
		"Welcome to the quiz: Geography",
		"Number of questions: 2",
		"Maximum score: 5",
		"Answers (select 2):",
		"You achieved a score of 5/5 (100.00%)",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output %q", want, output)
		}
	}
}

// TestPlayInvalidAnswerReprompts verifies a malformed answer is rejected and asked again.
func TestPlayInvalidAnswerReprompts(t *testing.T) {
	isolateEnv(t)
	path := testutil.WriteFile(t, "geo.yml", sampleQuiz)
	input := strings.Join([]string{path, "1", "1", "1,1", "1,2", ""}, "\n") + "\n"

	var out, err bytes.Buffer
	code := Run(nil, strings.NewReader(input), &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if strings.Count(out.String(), "ERROR: select 2 answer(s)") != 2 {
		t.Fatalf("expected two rejections, got %q", out.String())
	}
	if !strings.Contains(out.String(), "of 2/2") && !strings.Contains(out.String(), "of 3/3") {
		t.Fatalf("expected full marks on the single question, got %q", out.String())
	}
}

// TestPlayMissingFile verifies load failures are shown and exit with an error.
func TestPlayMissingFile(t *testing.T) {
	isolateEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.yml")

	var out, err bytes.Buffer
	code := Run(nil, strings.NewReader(missing+"\n"), &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(out.String(), "ERROR:") {
		t.Fatalf("expected error line, got %q", out.String())
	}
	if strings.Contains(err.String(), "Quiz aborted") {
		t.Fatalf("load errors should not be reported twice, got %q", err.String())
	}
}

// TestPlayEndOfInput verifies running out of input aborts the session.
func TestPlayEndOfInput(t *testing.T) {
	isolateEnv(t)
	path := testutil.WriteFile(t, "geo.yml", sampleQuiz)

	var out, err bytes.Buffer
	code := Run(nil, strings.NewReader(path+"\n2\n"), &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Quiz aborted") {
		t.Fatalf("expected abort message, got %q", err.String())
	}
}

// TestPlayConfigError verifies invalid settings fail before play starts.
func TestPlayConfigError(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SDJQUIZ_UI", "fancy")

	var out, err bytes.Buffer
	code := Run(nil, strings.NewReader(""), &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Config error") {
		t.Fatalf("expected config error, got %q", err.String())
	}
}
