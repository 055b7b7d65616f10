package fetch

import (
	"fmt"
	"net/http"
)

// ErrorClass represents a classification of fetch failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassStatus represents any other non-2xx status.
	ErrorClassStatus ErrorClass = "status"

	// ErrorClassNetwork represents transport errors (DNS, connect, reset, body read).
	ErrorClassNetwork ErrorClass = "network"
)

// FetchError is returned when a page cannot be fetched. It is never retried.
type FetchError struct {
	URL        string
	StatusCode int
	ErrorClass ErrorClass
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("fetch %s: %s error (status %d): %v", e.URL, e.ErrorClass, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("fetch %s: %s error (status %d)", e.URL, e.ErrorClass, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s error: %v", e.URL, e.ErrorClass, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-success HTTP status to an ErrorClass.
func classifyStatus(status int) ErrorClass {
	switch {
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		return ErrorClassStatus
	}
}

// isSuccess reports whether status is a 2xx code.
func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func statusError(url string, status int) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: status,
		ErrorClass: classifyStatus(status),
		Err:        fmt.Errorf("unexpected status %q", http.StatusText(status)),
	}
}

func networkError(url string, err error) *FetchError {
	return &FetchError{
		URL:        url,
		ErrorClass: ErrorClassNetwork,
		Err:        err,
	}
}
