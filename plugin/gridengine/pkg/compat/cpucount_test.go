package compat

import (
	"errors"
	"testing"
)

func TestSumCpusPerNode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantPos int
		wantErr bool
	}{
		{
			name:  "single count",
			input: "4",
			want:  4,
		},
		{
			name:  "repeat group",
			input: "2(x3)",
			want:  6,
		},
		{
			name:  "mixed entries",
			input: "2(x3),4,1(x2)",
			want:  12,
		},
		{
			name:  "missing closing paren is tolerated",
			input: "3(x2",
			want:  6,
		},
		{
			name:  "missing closing paren before comma",
			input: "3(x2,5",
			want:  11,
		},
		{
			name:  "large repeat",
			input: "128(x64)",
			want:  8192,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
			wantPos: 0,
		},
		{
			name:    "zero count fails whole list",
			input:   "0,5",
			wantErr: true,
			wantPos: 0,
		},
		{
			name:    "zero count after valid entries discards partial sum",
			input:   "5,0,5",
			wantErr: true,
			wantPos: 2,
		},
		{
			name:    "non numeric repeat",
			input:   "3(xabc)",
			wantErr: true,
			wantPos: 3,
		},
		{
			name:    "zero repeat",
			input:   "3(x0)",
			wantErr: true,
			wantPos: 3,
		},
		{
			name:    "empty entry between commas",
			input:   "3,,5",
			wantErr: true,
			wantPos: 2,
		},
		{
			name:    "trailing comma",
			input:   "3,",
			wantErr: true,
			wantPos: 2,
		},
		{
			name:    "bad separator",
			input:   "3x5",
			wantErr: true,
			wantPos: 1,
		},
		{
			name:    "lone paren is not a repeat group",
			input:   "3(4)",
			wantErr: true,
			wantPos: 1,
		},
		{
			name:    "negative count",
			input:   "-3",
			wantErr: true,
			wantPos: 0,
		},
		{
			name:    "leading space",
			input:   " 3",
			wantErr: true,
			wantPos: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumCpusPerNode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SumCpusPerNode(%q) = %d, want error", tt.input, got)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("SumCpusPerNode(%q) error type %T, want *ParseError", tt.input, err)
				}
				if perr.Pos != tt.wantPos {
					t.Fatalf("SumCpusPerNode(%q) failed at index %d, want %d", tt.input, perr.Pos, tt.wantPos)
				}
				return
			}
			if err != nil {
				t.Fatalf("SumCpusPerNode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("SumCpusPerNode(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := SumCpusPerNode("2(x3),x")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// The diagnostic must name both the offending position and the input.
	want := "unable to parse cpus-per-node list (at index 6): 2(x3),x"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}
