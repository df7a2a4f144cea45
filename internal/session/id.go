package session

import "github.com/oklog/ulid/v2"

// newSessionID returns a sortable id used to correlate log lines of one play-through.
func newSessionID() string {
	return ulid.Make().String()
}
