package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a quiz record.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		if issue.Field == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(parts, "; "))
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Issues: []Issue{{Field: field, Message: message}}}
}

// IndexError reports a reference to an answer or question that does not exist.
type IndexError struct {
	Kind  string
	Index int
	ID    string
}

func (err *IndexError) Error() string {
	if err.ID != "" {
		return fmt.Sprintf("%s %q does not exist", err.Kind, err.ID)
	}
	return fmt.Sprintf("%s index %d out of range", err.Kind, err.Index)
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}
