package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SubjectEntry is one subject on a semester: its code, credit hours and
// grade point. It is never stored on its own, only inside a SemesterRecord.
type SubjectEntry struct {
	// Code is the subject code as entered (e.g., "CS101").
	Code string `json:"code"`

	// Credit is the number of credit hours the subject carries.
	Credit float64 `json:"credit"`

	// Grade is the grade point earned (e.g., 3.5).
	Grade float64 `json:"grade"`
}

// UnmarshalJSON accepts credit and grade either as numbers or as numeric
// strings. Older histories stored the raw text of the input fields.
// Absent fields decode to their zero value.
func (s *SubjectEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code   *string         `json:"code"`
		Credit json.RawMessage `json:"credit"`
		Grade  json.RawMessage `json:"grade"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	credit, err := looseNumber(raw.Credit)
	if err != nil {
		return fmt.Errorf("invalid subject credit: %w", err)
	}
	grade, err := looseNumber(raw.Grade)
	if err != nil {
		return fmt.Errorf("invalid subject grade: %w", err)
	}

	*s = SubjectEntry{Credit: credit, Grade: grade}
	if raw.Code != nil {
		s.Code = *raw.Code
	}
	return nil
}

// looseNumber decodes a JSON number, a numeric string, null or nothing.
func looseNumber(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
		return strconv.ParseFloat(text, 64)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n, nil
}
