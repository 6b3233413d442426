package ocr

import "testing"

func TestParseScaleLabel(t *testing.T) {
	tests := []struct {
		text  string
		value float64
		unit  string
		ok    bool
	}{
		{"10", 10, "", true},
		{"0", 0, "", true},
		{"2.5", 2.5, "", true},
		{"1,5", 1.5, "", true},
		{"10mm", 10, "mm", true},
		{"2.5cm", 2.5, "cm", true},
		{"100 mm", 100, "mm", true},
		{"3 in", 3, "in", true},
		{"1m", 1, "m", true},
		{"  25  ", 25, "", true},
		{"50MM", 50, "mm", true},
		{"", 0, "", false},
		{"mm", 0, "", false},
		{"abc", 0, "", false},
		{"-5", 0, "", false},
		{"10.", 0, "", false},
		{"10x", 0, "", false},
		{"10 20", 0, "", false},
		{"10km", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			value, unit, ok := ParseScaleLabel(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseScaleLabel(%q): ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if value != tt.value {
				t.Errorf("ParseScaleLabel(%q): value = %v, want %v", tt.text, value, tt.value)
			}
			if unit != tt.unit {
				t.Errorf("ParseScaleLabel(%q): unit = %q, want %q", tt.text, unit, tt.unit)
			}
		})
	}
}
