package usagelog

import "gopkg.in/yaml.v3"

// UnmarshalYAML mirrors the JSON decoding rules for YAML input files: a bare
// number is the legacy secondary-hours form, a mapping carries both fields,
// and anything malformed decodes as a zero record.
func (r *DayRecord) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n float64
		if err := node.Decode(&n); err != nil {
			*r = DayRecord{}
			return nil
		}
		*r = DayRecord{SecondaryHours: clampNonNegative(n)}
	case yaml.MappingNode:
		var obj struct {
			PrimaryHours   *float64 `yaml:"primaryHours"`
			SecondaryHours *float64 `yaml:"secondaryHours"`
		}
		if err := node.Decode(&obj); err != nil {
			*r = DayRecord{}
			return nil
		}
		rec := DayRecord{}
		if obj.PrimaryHours != nil {
			rec.PrimaryHours = clampNonNegative(*obj.PrimaryHours)
		}
		if obj.SecondaryHours != nil {
			rec.SecondaryHours = clampNonNegative(*obj.SecondaryHours)
		}
		*r = rec
	default:
		*r = DayRecord{}
	}
	return nil
}

// DecodeYAML parses a raw date-to-record YAML mapping into a Log.
func DecodeYAML(data []byte) (Log, error) {
	var log Log
	if err := yaml.Unmarshal(data, &log); err != nil {
		return nil, err
	}
	if log == nil {
		log = Log{}
	}
	return log, nil
}
