package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrPagination matches every *ParseError via errors.Is.
var ErrPagination = errors.New("cannot determine page count")

// ParseError is returned when the page count cannot be read from a listing page.
type ParseError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagination: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("pagination: %s", e.Reason)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPagination.
func (e *ParseError) Is(target error) bool {
	return target == ErrPagination
}

// CountPages reads the total page count from the first listing page.
//
// The count is the text of the second-to-last link inside nav.pagination; the
// last link is the "next" control. A catalog without a Next link (a single
// page) does not fit this layout and fails.
func CountPages(content string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return 0, &ParseError{Reason: "parse markup", Err: err}
	}

	nav := doc.Find("nav.pagination").First()
	if nav.Length() == 0 {
		return 0, &ParseError{Reason: "pagination block not found"}
	}

	links := nav.Find("a")
	if links.Length() < 2 {
		return 0, &ParseError{Reason: fmt.Sprintf("expected at least 2 pagination links, found %d", links.Length())}
	}

	text := strings.TrimSpace(links.Eq(links.Length() - 2).Text())
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Reason: fmt.Sprintf("page count %q is not a number", text), Err: err}
	}
	if count < 1 {
		return 0, &ParseError{Reason: fmt.Sprintf("page count %d is below 1", count)}
	}

	return count, nil
}
