package plain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptString asks for a non-empty string value.
func promptString(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s: %w", label, io.EOF)
		}
	}
}

// promptCount asks for a non-negative number; empty input selects defaultValue.
func promptCount(reader *bufio.Reader, out io.Writer, label string, defaultValue int) (int, error) {
	for {
		fmt.Fprintf(out, "%s [%d]: ", label, defaultValue)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if err == io.EOF {
				return 0, fmt.Errorf("missing input for %s: %w", label, io.EOF)
			}
			return defaultValue, nil
		}
		if value, convErr := strconv.Atoi(line); convErr == nil && value >= 0 {
			return value, nil
		}
		if err == io.EOF {
			return 0, fmt.Errorf("invalid response %q", line)
		}
		fmt.Fprintln(out, "Please enter a number.")
	}
}
