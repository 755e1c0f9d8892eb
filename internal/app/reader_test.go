package app

import (
	"io"
	"strings"
	"testing"

	"github.com/bft-labs/xargo/internal/domain"
)

func collect(t *testing.T, input string, mode domain.Mode) []string {
	t.Helper()
	r := NewRecordReader(strings.NewReader(input), mode)
	var recs []string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		recs = append(recs, rec)
	}
}

func TestRecordReader_Lines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"terminated lines keep the newline", "a\nb\n", []string{"a\n", "b\n"}},
		{"final record without delimiter", "a\nb", []string{"a\n", "b"}},
		{"blank lines are records", "\n\n", []string{"\n", "\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.input, domain.Whitespace)
			if len(got) != len(tt.want) {
				t.Fatalf("records = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecordReader_NulDelimited(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"terminator stripped", "x\x00y z\x00", []string{"x", "y z"}},
		{"final record without terminator", "x\x00tail", []string{"x", "tail"}},
		{"empty record", "\x00", []string{""}},
		{"newlines are data", "a\nb\x00", []string{"a\nb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.input, domain.NulDelimited)
			if len(got) != len(tt.want) {
				t.Fatalf("records = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
