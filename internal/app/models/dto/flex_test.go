package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"integer", `40`, 40},
		{"numeric string", `"99.9"`, 99.9},
		{"padded string", `" 7 "`, 7},
		{"blank string", `""`, 0},
		{"null", `null`, 0},
		{"garbage string", `"abc"`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if float64(f) != tt.want {
				t.Errorf("FlexFloat(%s) = %v, want %v", tt.in, float64(f), tt.want)
			}
		})
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"number", `42`, 42},
		{"string", `"17"`, 17},
		{"float truncates", `3.9`, 3},
		{"blank", `""`, 0},
		{"invalid", `"many"`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i FlexInt
			if err := json.Unmarshal([]byte(tt.in), &i); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if int(i) != tt.want {
				t.Errorf("FlexInt(%s) = %d, want %d", tt.in, int(i), tt.want)
			}
		})
	}
}

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"true", `true`, true},
		{"false", `false`, false},
		{"string true", `"true"`, true},
		{"string false", `"false"`, false},
		{"null", `null`, false},
		{"invalid", `"maybe"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if bool(b) != tt.want {
				t.Errorf("FlexBool(%s) = %v, want %v", tt.in, bool(b), tt.want)
			}
		})
	}
}
