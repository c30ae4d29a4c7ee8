package gcode

import (
	"testing"
)

func TestValidateSpeed(t *testing.T) {
	tests := []struct {
		name    string
		speed   string
		wantErr bool
	}{
		{"minimum", "1", false},
		{"maximum", "24000", false},
		{"typical", "12000", false},
		{"zero", "0", true},
		{"above maximum", "24001", true},
		{"negative", "-5", true},
		{"not a number", "abc", true},
		{"empty", "", true},
		{"fractional", "1000.5", true},
		{"trailing garbage", "1000rpm", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpeed(tt.speed, 1, 24000)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpeed(%q) error = %v, wantErr %v", tt.speed, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSpeedCustomRange(t *testing.T) {
	if err := ValidateSpeed("500", 100, 400); err == nil {
		t.Error("ValidateSpeed(500) with max 400: expected error, got nil")
	}
	if err := ValidateSpeed("250", 100, 400); err != nil {
		t.Errorf("ValidateSpeed(250) with range 100..400: unexpected error %v", err)
	}
}
