package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/ccpulse/internal/schema"
	"github.com/dotcommander/ccpulse/internal/usagelog"
	"gopkg.in/yaml.v3"
)

// FileSource reads usage logs from files matched by a glob pattern instead of
// invoking the external tool. Matches are merged in lexical path order, later
// files winning on duplicate dates. JSON and YAML files are supported.
type FileSource struct {
	Pattern string
}

// NewFileSource creates a source over a literal path or doublestar pattern.
func NewFileSource(pattern string) *FileSource {
	return &FileSource{Pattern: pattern}
}

// Fetch expands the pattern and merges every matched file into one log.
// No matches, or no readable file, is fatal.
func (s *FileSource) Fetch() (usagelog.Log, []string, error) {
	paths, err := doublestar.FilepathGlob(s.Pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad input pattern %q: %v", ErrUnavailable, s.Pattern, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w: no files match %q", ErrUnavailable, s.Pattern)
	}
	sort.Strings(paths)

	merged := usagelog.Log{}
	var warnings []string
	for _, path := range paths {
		log, fileWarnings, err := readLogFile(path)
		if err != nil {
			return nil, nil, err
		}
		for date, rec := range log {
			merged[date] = rec
		}
		for _, w := range fileWarnings {
			warnings = append(warnings, fmt.Sprintf("%s: %s", path, w))
		}
	}
	return merged, warnings, nil
}

func readLogFile(path string) (usagelog.Log, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAMLLog(path, data)
	default:
		log, warnings, err := validateAndDecode(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return log, warnings, nil
	}
}

// readYAMLLog decodes a YAML log file, running the same schema checks over the
// generically-decoded document that JSON payloads get.
func readYAMLLog(path string, data []byte) (usagelog.Log, []string, error) {
	var payload map[string]any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: %s is not a YAML mapping of day records: %v", ErrUnavailable, path, err)
	}

	v, err := schema.NewValidator()
	if err != nil {
		return nil, nil, err
	}
	warnings := issueStrings(v.Validate(payload))

	log, err := usagelog.DecodeYAML(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decoding %s: %v", ErrUnavailable, path, err)
	}
	return log, warnings, nil
}
