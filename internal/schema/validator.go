// Package schema validates fetched usage-log payloads against an embedded CUE
// schema before the tolerant record decoder runs. A payload that is not a JSON
// object at all is a hard error (the data source is effectively unavailable);
// individual day entries that fail the schema are reported as issues and left
// for the decoder to zero out.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/usagelog.cue
var schemaFS embed.FS

// Issue describes one day entry that failed validation.
type Issue struct {
	Date    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Date, i.Message)
}

// Validator checks usage-log payloads against the embedded CUE schema.
type Validator struct {
	ctx      *cue.Context
	dateKey  cue.Value
	dayValue cue.Value
}

// NewValidator compiles the embedded schema. Failure here is a build defect,
// not a runtime condition.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/usagelog.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("usagelog.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compiling usagelog schema: %w", err)
	}

	v := &Validator{ctx: ctx}
	v.dateKey = inst.LookupPath(cue.ParsePath("#DateKey"))
	v.dayValue = inst.LookupPath(cue.ParsePath("#DayValue"))
	if !v.dateKey.Exists() || !v.dayValue.Exists() {
		return nil, fmt.Errorf("usagelog schema is missing #DateKey or #DayValue")
	}
	return v, nil
}

// ValidateJSON checks a raw payload. The returned error means the document as
// a whole is unusable; the returned issues flag individual day entries that do
// not conform and will decode as zero records.
func (v *Validator) ValidateJSON(data []byte) ([]Issue, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object of day records: %w", err)
	}
	return v.Validate(payload), nil
}

// Validate checks an already-decoded payload mapping.
func (v *Validator) Validate(payload map[string]any) []Issue {
	var issues []Issue
	for date, value := range payload {
		if err := v.checkUnify(v.dateKey, date); err != nil {
			issues = append(issues, Issue{Date: date, Message: "key is not a YYYY-MM-DD date"})
		}
		if err := v.checkUnify(v.dayValue, value); err != nil {
			issues = append(issues, Issue{
				Date:    date,
				Message: "record is neither a non-negative number nor a {primaryHours, secondaryHours} object",
			})
		}
	}
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Date != issues[j].Date {
			return issues[i].Date < issues[j].Date
		}
		return issues[i].Message < issues[j].Message
	})
	return issues
}

// checkUnify encodes a Go value and unifies it with a schema definition,
// returning the first unification or concreteness error.
func (v *Validator) checkUnify(def cue.Value, value any) error {
	enc := v.ctx.Encode(value)
	if err := enc.Err(); err != nil {
		return err
	}
	unified := def.Unify(enc)
	if err := unified.Err(); err != nil {
		return err
	}
	return unified.Validate(cue.Concrete(true))
}
