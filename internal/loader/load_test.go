package loader

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdjquiz/internal/quiz"
	"sdjquiz/internal/testutil"
)

const sampleYAML = `title: Python Basics
description: A Short QUIZ
author: someone
questions:
  - title: Lists
    text: Which method appends to a list?
    keywords: [lists, Methods]
    score: 2
    answers:
      - text: append
        correct: true
      - text: push
        correct: false
  - uniqueId: fixed-id
    title: Types
    text: Which are immutable?
    keywords: []
    score: 3
    type: multi
    answers:
      - text: tuple
        correct: true
      - text: str
        correct: true
      - text: list
`

func TestLoadYAML(t *testing.T) {
	q, err := Load(testutil.WriteFile(t, "quiz.yml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "python basics", q.Title())
	assert.Equal(t, "a short quiz", q.Description())
	assert.Equal(t, "someone", q.Author())
	assert.Equal(t, 2, q.QuestionsCount())
	assert.Equal(t, 5, q.MaxScore())

	fixed, ok := q.Question("fixed-id")
	require.True(t, ok)
	assert.Equal(t, quiz.TypeMulti, fixed.Type())
	assert.Equal(t, 2, fixed.CorrectCount())
}

func TestLoadJSON(t *testing.T) {
	payload := `{
  "title": "JSON Quiz",
  "description": "d",
  "questions": [
    {"title": "t", "text": "x", "keywords": ["k"], "score": 4,
     "answers": [{"text": "a", "correct": true}, {"text": "b"}]}
  ]
}`
	q, err := Load(testutil.WriteFile(t, "quiz.json", payload))
	require.NoError(t, err)
	assert.Equal(t, 4, q.MaxScore())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name     string
		path     func(t *testing.T) string
		kind     Kind
		sentinel error
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yml") },
			kind:     KindNotFound,
			sentinel: ErrNotFound,
		},
		{
			name:     "bad yaml",
			path:     func(t *testing.T) string { return testutil.WriteFile(t, "bad.yml", "title: [unclosed\n") },
			kind:     KindFormat,
			sentinel: ErrFormat,
		},
		{
			name:     "top level list",
			path:     func(t *testing.T) string { return testutil.WriteFile(t, "list.yml", "- a\n- b\n") },
			kind:     KindFormat,
			sentinel: ErrFormat,
		},
		{
			name:     "empty document",
			path:     func(t *testing.T) string { return testutil.WriteFile(t, "empty.yml", "") },
			kind:     KindFormat,
			sentinel: ErrFormat,
		},
		{
			name:     "bad json",
			path:     func(t *testing.T) string { return testutil.WriteFile(t, "bad.json", "{") },
			kind:     KindFormat,
			sentinel: ErrFormat,
		},
		{
			name: "invalid quiz",
			path: func(t *testing.T) string {
				return testutil.WriteFile(t, "invalid.yml", "title: t\ndescription: d\nquestions:\n  - title: q\n    text: x\n    keywords: []\n    score: -1\n    answers: []\n")
			},
			kind:     KindInvalid,
			sentinel: ErrInvalid,
		},
		{
			name:     "directory",
			path:     func(t *testing.T) string { return t.TempDir() },
			kind:     KindIO,
			sentinel: nil,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path(t))
			require.Error(t, err)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected LoadError, got %T", err)
			assert.Equal(t, tc.kind, loadErr.Kind)
			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestLoadInvalidKeepsValidationIssues(t *testing.T) {
	path := testutil.WriteFile(t, "invalid.yml", "title: t\nquestions: []\n")
	_, err := Load(path)
	var validationErr *quiz.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "description", validationErr.Issues[0].Field)
}

func TestLoadPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	path := testutil.WriteFile(t, "locked.yml", sampleYAML)
	require.NoError(t, os.Chmod(path, 0o000))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrPermission)
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	resolved, err := ResolvePath("~/quizzes/a.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "quizzes", "a.yml"), resolved)

	resolved, err = ResolvePath("  relative.yml ")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
	assert.Equal(t, "relative.yml", filepath.Base(resolved))

	resolved, err = ResolvePath("~")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(home), resolved)

	_, err = ResolvePath("   ")
	assert.Error(t, err)
}

// TestResolvePathNamedUser verifies ~name expands to that user's home directory.
func TestResolvePathNamedUser(t *testing.T) {
	current, err := user.Current()
	if err != nil || current.Username == "" {
		t.Skip("current user unavailable")
	}
	account, err := user.Lookup(current.Username)
	if err != nil {
		t.Skip("user lookup unavailable")
	}

	resolved, err := ResolvePath("~" + current.Username + "/quizzes/a.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(account.HomeDir, "quizzes", "a.yml"), resolved)

	resolved, err = ResolvePath("~" + current.Username)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(account.HomeDir), resolved)

	_, err = ResolvePath("~no-such-user-sdjquiz/a.yml")
	assert.Error(t, err)
}

func TestOpenResolvesAndWrapsErrors(t *testing.T) {
	path := testutil.WriteFile(t, "quiz.yaml", sampleYAML)
	q, err := Open("  " + path + " ")
	require.NoError(t, err)
	assert.Equal(t, 2, q.QuestionsCount())

	_, err = Open("")
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, KindIO, loadErr.Kind)
}

// TestLoadBundledQuiz verifies the sample quiz shipped with the repo is valid.
func TestLoadBundledQuiz(t *testing.T) {
	q, err := Load(filepath.Join("..", "..", "quizzes", "go-basics.yml"))
	require.NoError(t, err)
	assert.Equal(t, 3, q.QuestionsCount())
	assert.Equal(t, 6, q.MaxScore())
	loops, ok := q.Question("go-loops")
	require.True(t, ok)
	assert.Equal(t, quiz.TypeMulti, loops.Type())
	assert.Equal(t, 2, loops.CorrectCount())
}
