package calculator

import (
	"errors"
	"testing"
)

func TestAverageGPA(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    string
		wantErr error
	}{
		{name: "single value", values: []string{"3.5"}, want: "3.50"},
		{name: "plain mean", values: []string{"3.0", "4.0", "3.5"}, want: "3.50"},
		{name: "rounded", values: []string{"3.71", "3.5", "2.9"}, want: "3.37"},
		{name: "whitespace trimmed", values: []string{" 3 ", "4"}, want: "3.50"},
		{name: "empty list", values: nil, wantErr: ErrEmptySelection},
		{name: "blank value", values: []string{"3", ""}, wantErr: ErrMissingField},
		{name: "not a number", values: []string{"3", "B+"}, wantErr: ErrNotANumber},
		{name: "float syntax", values: []string{".5", "3.", "1e0"}, want: "1.50"},
		{name: "NaN", values: []string{"3", "NaN"}, wantErr: ErrNotANumber},
		{name: "infinity", values: []string{"-Inf"}, wantErr: ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AverageGPA(tt.values)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AverageGPA() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AverageGPA() = %q, want %q", got, tt.want)
			}
		})
	}
}
