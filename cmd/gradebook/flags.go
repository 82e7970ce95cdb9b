package main

import (
	"fmt"
	"strings"

	"github.com/mmynk/gradebook/internal/calculator"
)

// subjectList collects repeated -subject CODE:CREDIT:GRADE flags.
type subjectList []calculator.SubjectInput

func (l *subjectList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = s.Code + ":" + s.Credit + ":" + s.Grade
	}
	return strings.Join(parts, ",")
}

func (l *subjectList) Set(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return fmt.Errorf("subject %q must be CODE:CREDIT:GRADE", value)
	}
	*l = append(*l, calculator.SubjectInput{Code: parts[0], Credit: parts[1], Grade: parts[2]})
	return nil
}

// stringList collects a repeated string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// splitIDs parses a comma-separated ID list, dropping blanks.
func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
