package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// allowedEducationKeys are the only keys a structured education record may
// carry on the wire.
var allowedEducationKeys = map[string]bool{
	"school":     true,
	"degree":     true,
	"field":      true,
	"start_date": true,
	"end_date":   true,
}

// ParseProfile strictly decodes and validates a generation request payload.
// Optional fields set to JSON null or to an empty/zero value are treated as
// absent; unknown top-level keys are ignored.
func ParseProfile(raw []byte) (Profile, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	if payload == nil {
		return Profile{}, errors.New("profile must be a JSON object")
	}

	var p Profile
	var err error
	if p.Name, err = requiredString(payload, "name"); err != nil {
		return Profile{}, err
	}
	if p.Profession, err = requiredString(payload, "profession"); err != nil {
		return Profile{}, err
	}
	if p.Experience, err = optionalString(payload, "experience"); err != nil {
		return Profile{}, err
	}
	if p.Skills, err = optionalStrings(payload, "skills"); err != nil {
		return Profile{}, err
	}
	if p.Projects, err = optionalStrings(payload, "projects"); err != nil {
		return Profile{}, err
	}
	if p.Education, err = parseEducation(payload["education"]); err != nil {
		return Profile{}, err
	}
	p.TemplateID, _ = payload["template_id"].(string)
	p.Contact = parseContact(payload["contact"])
	return p, nil
}

// IsValid reports whether raw is an acceptable generation payload.
func IsValid(raw []byte) bool {
	_, err := ParseProfile(raw)
	return err == nil
}

// truthy mirrors the acceptance rule for optional fields: null, false, zero,
// empty strings, and empty collections all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

func requiredString(payload map[string]any, key string) (string, error) {
	v, ok := payload[key]
	if !ok || !truthy(v) {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

func optionalString(payload map[string]any, key string) (string, error) {
	v, ok := payload[key]
	if !ok || !truthy(v) {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func optionalStrings(payload map[string]any, key string) ([]string, error) {
	v, ok := payload[key]
	if !ok || !truthy(v) {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must contain only strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func parseEducation(v any) (*Education, error) {
	if !truthy(v) {
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		return &Education{Text: t}, nil
	case []any:
		records := make([]EducationRecord, 0, len(t))
		for _, item := range t {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, errors.New("education entries must be objects")
			}
			rec, err := parseEducationRecord(entry)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return &Education{Records: records}, nil
	}
	return nil, errors.New("education must be a string or a list of records")
}

func parseEducationRecord(entry map[string]any) (EducationRecord, error) {
	var rec EducationRecord
	for k, v := range entry {
		if !allowedEducationKeys[k] {
			return EducationRecord{}, fmt.Errorf("education entry has unknown key %q", k)
		}
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return EducationRecord{}, fmt.Errorf("education %s must be a string", k)
		}
		switch k {
		case "school":
			rec.School = s
		case "degree":
			rec.Degree = s
		case "field":
			rec.Field = s
		case "start_date":
			rec.StartDate = s
		case "end_date":
			rec.EndDate = s
		}
	}
	return rec, nil
}

// parseContact is lenient: it picks up string-typed fields from an object
// and ignores everything else.
func parseContact(v any) *Contact {
	entry, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	pick := func(key string) string {
		s, _ := entry[key].(string)
		return s
	}
	c := Contact{
		Email:    pick("email"),
		Phone:    pick("phone"),
		LinkedIn: pick("linkedin"),
		GitHub:   pick("github"),
		Website:  pick("website"),
	}
	if c == (Contact{}) {
		return nil
	}
	return &c
}
