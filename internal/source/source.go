// Package source obtains the usage log the scoring core consumes: either by
// invoking the external cchours tool or by reading log files directly. The
// core never fetches data itself; it is handed a fully materialized log.
package source

import (
	"errors"
	"fmt"

	"github.com/dotcommander/ccpulse/internal/schema"
	"github.com/dotcommander/ccpulse/internal/usagelog"
)

// ErrUnavailable marks the fatal error class: no usable data could be
// obtained at all. The CLI exits non-zero on it; no partial score is shown.
var ErrUnavailable = errors.New("usage data unavailable")

// DefaultCommand is the external tool that produces the usage log.
const DefaultCommand = "cchours"

// Source fetches a usage log. Warnings flag individual day entries that were
// malformed and will score as zero; they never abort the run.
type Source interface {
	Fetch() (usagelog.Log, []string, error)
}

// validateAndDecode runs schema validation over a raw JSON payload, then the
// tolerant record decode. Schema issues become warnings; only an unusable
// document is an error.
func validateAndDecode(data []byte) (usagelog.Log, []string, error) {
	v, err := schema.NewValidator()
	if err != nil {
		return nil, nil, err
	}
	issues, err := v.ValidateJSON(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log, err := usagelog.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return log, issueStrings(issues), nil
}

func issueStrings(issues []schema.Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.String()
	}
	return out
}
