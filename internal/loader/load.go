package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sdjquiz/internal/quiz"
)

// ResolvePath expands a leading ~ or ~user and returns an absolute path.
func ResolvePath(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return "", fmt.Errorf("empty quiz file path")
	}
	path, err := expandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve quiz path: %w", err)
	}
	return abs, nil
}

// expandHome replaces a leading ~ with the current user's home directory and
// ~name with the home directory of that user.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	name, rest, _ := strings.Cut(path[1:], "/")
	if name == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, rest), nil
	}
	account, err := user.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("resolve home directory of %q: %w", name, err)
	}
	return filepath.Join(account.HomeDir, rest), nil
}

// Load reads, parses, and validates a quiz file.
func Load(path string) (*quiz.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}
	record, err := parseRecord(data, path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: KindFormat, Err: err}
	}
	q, err := quiz.FromRecord(record)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: KindInvalid, Err: err}
	}
	return q, nil
}

func readError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &LoadError{Path: path, Kind: KindNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &LoadError{Path: path, Kind: KindPermission, Err: err}
	default:
		return &LoadError{Path: path, Kind: KindIO, Err: err}
	}
}

func parseRecord(data []byte, path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONRecord(data)
	}
	return parseYAMLRecord(data)
}

func parseJSONRecord(data []byte) (map[string]any, error) {
	var record map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&record); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("parse json: document is empty")
	}
	return record, nil
}

func parseYAMLRecord(data []byte) (map[string]any, error) {
	var record map[string]any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&record); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse yaml: document is empty")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("parse yaml: document is empty")
	}
	return record, nil
}

// Open resolves a user supplied path and loads the quiz it points to.
// Path resolution failures are reported as a LoadError as well.
func Open(raw string) (*quiz.Quiz, error) {
	path, err := ResolvePath(raw)
	if err != nil {
		return nil, &LoadError{Path: raw, Kind: KindIO, Err: err}
	}
	return Load(path)
}
