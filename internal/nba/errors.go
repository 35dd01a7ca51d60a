package nba

import (
	"errors"
	"fmt"
)

// Standings argument errors.
var (
	ErrUnknownConference = errors.New("nba: unknown conference")
	ErrUnknownDivision   = errors.New("nba: unknown division")
)

// NetworkError reports a failed round trip to the stats API: the request
// could not be sent, timed out, or came back with a non-2xx status.
type NetworkError struct {
	URL        string
	StatusCode int   // 0 when no response was received
	Err        error // underlying transport error, if any
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nba: request %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("nba: request %s failed: status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nba: invalid JSON from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports a decoded response missing an expected field, or
// carrying it with an unexpected type.
type FormatError struct {
	Field  string
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("nba: response field %q: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("nba: response field %q missing or malformed", e.Field)
}

// UnknownTeamError reports a team code outside the league's tricode set.
type UnknownTeamError struct {
	Code string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("nba: unknown team code %q", e.Code)
}

// NotPlayingError reports a live-game request for a team with no game in
// progress today.
type NotPlayingError struct {
	Tricode string
}

func (e *NotPlayingError) Error() string {
	return fmt.Sprintf("nba: %s is not currently playing", e.Tricode)
}
