package compat

import "testing"

func TestParseArg(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue string
		expectErr bool
	}{
		{
			name:      "bare value",
			input:     "enable=yes",
			wantKey:   "enable",
			wantValue: "yes",
		},
		{
			name:      "integer value",
			input:     "enable=7",
			wantKey:   "enable",
			wantValue: "7",
		},
		{
			name:      "quoted value",
			input:     `enable="true"`,
			wantKey:   "enable",
			wantValue: "true",
		},
		{
			name:      "surrounding whitespace",
			input:     "  enable=no ",
			wantKey:   "enable",
			wantValue: "no",
		},
		{
			name:      "missing value",
			input:     "enable",
			expectErr: true,
		},
		{
			name:      "empty argument",
			input:     "   ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			arg, err := ParseArg(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseArg(%q): expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArg(%q): unexpected error: %v", tt.input, err)
			}
			if arg.Key != tt.wantKey || arg.Value != tt.wantValue {
				t.Fatalf("ParseArg(%q) = (%q, %q), want (%q, %q)",
					tt.input, arg.Key, arg.Value, tt.wantKey, tt.wantValue)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		value     string
		want      bool
		expectErr bool
	}{
		{value: "1", want: true},
		{value: "7", want: true},
		{value: "007", want: true},
		{value: "0", want: false},
		{value: "00", want: false},
		{value: "y", want: true},
		{value: "YES", want: true},
		{value: "t", want: true},
		{value: "True", want: true},
		{value: "n", want: false},
		{value: "No", want: false},
		{value: "f", want: false},
		{value: "FALSE", want: false},
		{value: "maybe", expectErr: true},
		{value: "1x", expectErr: true},
		{value: "-1", expectErr: true},
		{value: "", expectErr: true},
		{value: "on", expectErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseBool(tt.value)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseBool(%q) = %v, want error", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBool(%q): unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ParseBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
