package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind categorizes fetch failures. All kinds mark the page as unavailable.
type Kind string

const (
	KindTimeout    Kind = "timeout"
	KindNetwork    Kind = "network"
	KindUnexpected Kind = "unexpected"
)

// Error is returned by Fetcher.Fetch for every failed request.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int // set for non-2xx responses
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s fetching %s: unexpected status %d", e.Kind, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s fetching %s: %v", e.Kind, e.URL, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the Kind of a fetch error, or "" when err is not one.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsTimeout reports whether err is a fetch timeout.
func IsTimeout(err error) bool {
	return KindOf(err) == KindTimeout
}

// classify maps a transport error onto a Kind.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindUnexpected
	}
	return KindNetwork
}
