package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const isoDateFormat = "2006-01-02"

var (
	slashDate = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	isoDate   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// looseLayouts cover free-form statement dates like "July 4, 2025" or
// "4 Jul 2025".
var looseLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2006/01/02",
}

// DateFormatError means a date value matched none of the recognized
// shapes. Statement data is assumed trustworthy, so this indicates a data
// problem worse than one row and aborts the run.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unrecognized date %q", e.Value)
}

// NormalizeDate converts a raw date value to ISO YYYY-MM-DD. Empty input
// yields an empty string with no error.
func NormalizeDate(value string) (string, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", nil
	}
	switch {
	case slashDate.MatchString(s):
		t, err := time.Parse("1/2/2006", s)
		if err != nil {
			return "", &DateFormatError{Value: value}
		}
		return t.Format(isoDateFormat), nil
	case isoDate.MatchString(s):
		if _, err := time.Parse(isoDateFormat, s); err != nil {
			return "", &DateFormatError{Value: value}
		}
		return s, nil
	default:
		for _, layout := range looseLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(isoDateFormat), nil
			}
		}
		return "", &DateFormatError{Value: value}
	}
}
