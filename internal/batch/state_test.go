package batch

import (
	"testing"

	"github.com/bft-labs/xargo/internal/domain"
)

func bigLimits() domain.Limits {
	return domain.Limits{SizeBytes: 1 << 20, Mode: domain.Whitespace}
}

func TestConsume_WhitespaceSplitting(t *testing.T) {
	tests := []struct {
		name        string
		record      string
		wantEntries int
	}{
		{"single token", "alpha\n", 1},
		{"multiple tokens", "alpha beta gamma\n", 3},
		{"tabs and runs of spaces", "a\t\tb   c\n", 3},
		{"leading and trailing whitespace", "   a b   \n", 2},
		{"blank line", "\n", 0},
		{"empty record", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(bigLimits(), 0)
			verdict, rest := st.Consume(tt.record, nil)
			if verdict != NeedMore {
				t.Fatalf("verdict = %v, want need-more", verdict)
			}
			if rest != "" {
				t.Errorf("rest = %q, want empty", rest)
			}
			if st.Entries() != tt.wantEntries {
				t.Errorf("entries = %d, want %d", st.Entries(), tt.wantEntries)
			}
		})
	}
}

func TestConsume_MaxEntries(t *testing.T) {
	limits := bigLimits()
	limits.MaxEntries = 2

	st := NewState(limits, 0)
	verdict, rest := st.Consume("a b c d\n", nil)
	if verdict != Split {
		t.Fatalf("verdict = %v, want split", verdict)
	}
	if rest != "c d\n" {
		t.Errorf("rest = %q, want %q", rest, "c d\n")
	}
	if st.Entries() != 2 {
		t.Errorf("entries = %d, want 2", st.Entries())
	}
}

func TestConsume_MaxEntriesAtRecordEnd(t *testing.T) {
	// The cap is hit exactly when the record runs out: nothing to carry over.
	limits := bigLimits()
	limits.MaxEntries = 1

	st := NewState(limits, 0)
	if verdict, _ := st.Consume("a\n", nil); verdict != NeedMore {
		t.Fatalf("first record verdict = %v, want need-more", verdict)
	}
	verdict, rest := st.Consume("b\n", nil)
	if verdict != Split {
		t.Fatalf("second record verdict = %v, want split", verdict)
	}
	if rest != "b\n" {
		t.Errorf("rest = %q, want %q", rest, "b\n")
	}
}

func TestConsume_ByteBudget(t *testing.T) {
	// Explicit budget: one byte per character plus a separator, no pointer
	// slot. Seed 4 models an "echo" template.
	limits := domain.Limits{SizeBytes: 10, SizeExplicit: true}

	st := NewState(limits, 4)
	verdict, rest := st.Consume("abc def\n", nil)
	if verdict != Split {
		t.Fatalf("verdict = %v, want split", verdict)
	}
	if rest != "def\n" {
		t.Errorf("rest = %q, want %q", rest, "def\n")
	}
	if st.Entries() != 1 {
		t.Errorf("entries = %d, want 1", st.Entries())
	}
}

func TestConsume_ByteBudgetCountsSlotOverhead(t *testing.T) {
	// Discovered budget: each token also charges a pointer slot and a
	// separator byte up front.
	limits := domain.Limits{SizeBytes: slotBytes + 4}

	st := NewState(limits, 0)
	verdict, rest := st.Consume("ab\n", nil)
	if verdict != Split {
		t.Fatalf("verdict = %v, want split", verdict)
	}
	if rest != "ab\n" {
		t.Errorf("rest = %q, want token start back", rest)
	}

	limits.SizeBytes = slotBytes + 5
	st = NewState(limits, 0)
	if verdict, _ := st.Consume("ab\n", nil); verdict != NeedMore {
		t.Fatalf("verdict = %v, want need-more with one extra byte of budget", verdict)
	}
}

func TestConsume_OversizedSingleToken(t *testing.T) {
	limits := domain.Limits{SizeBytes: 8, SizeExplicit: true}

	st := NewState(limits, 4)
	verdict, rest := st.Consume("aaaaaaaaaaaaaaaa\n", nil)
	if verdict != Split {
		t.Fatalf("verdict = %v, want split", verdict)
	}
	if rest != "aaaaaaaaaaaaaaaa\n" {
		t.Errorf("rest = %q, want the whole token back", rest)
	}
	if st.Entries() != 0 {
		t.Errorf("entries = %d, want 0", st.Entries())
	}
}

func TestConsume_StopString(t *testing.T) {
	tests := []struct {
		name        string
		stop        string
		record      string
		wantVerdict Verdict
		wantEntries int
	}{
		{"sentinel mid-record", "END", "a END b\n", Sentinel, 1},
		{"sentinel first token", "END", "END\n", Sentinel, 0},
		{"prefix is not a match", "EN", "END\n", NeedMore, 1},
		{"longer token is not a match", "END", "ENDING\n", NeedMore, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := bigLimits()
			limits.StopString = tt.stop
			st := NewState(limits, 0)
			verdict, _ := st.Consume(tt.record, nil)
			if verdict != tt.wantVerdict {
				t.Fatalf("verdict = %v, want %v", verdict, tt.wantVerdict)
			}
			if st.Entries() != tt.wantEntries {
				t.Errorf("entries = %d, want %d", st.Entries(), tt.wantEntries)
			}
		})
	}
}

func TestConsume_NulDelimited(t *testing.T) {
	limits := domain.Limits{SizeBytes: 1 << 20, Mode: domain.NulDelimited}

	st := NewState(limits, 0)
	if verdict, _ := st.Consume("a b\tc", nil); verdict != NeedMore {
		t.Fatalf("verdict = %v, want need-more", verdict)
	}
	if st.Entries() != 1 {
		t.Errorf("entries = %d, want 1: whitespace must stay uninterpreted", st.Entries())
	}

	dst := make([]string, 1)
	st.Reset()
	st.Consume("a b\tc", dst)
	if dst[0] != "a b\tc" {
		t.Errorf("dst[0] = %q, want the record verbatim", dst[0])
	}
}

func TestConsume_NulDelimitedLimits(t *testing.T) {
	limits := domain.Limits{SizeBytes: 1 << 20, Mode: domain.NulDelimited, MaxEntries: 1}

	st := NewState(limits, 0)
	st.Consume("one", nil)
	verdict, rest := st.Consume("two", nil)
	if verdict != Split {
		t.Fatalf("verdict = %v, want split", verdict)
	}
	if rest != "two" {
		t.Errorf("rest = %q, want the whole record back", rest)
	}
}

func TestConsume_NulDelimitedIgnoresStopString(t *testing.T) {
	limits := domain.Limits{SizeBytes: 1 << 20, Mode: domain.NulDelimited, StopString: "END"}

	st := NewState(limits, 0)
	if verdict, _ := st.Consume("END", nil); verdict != NeedMore {
		t.Fatalf("verdict = %v, want need-more: stop string is disabled in NUL mode", verdict)
	}
}

func TestConsume_MeasureAndAssemblePassesAgree(t *testing.T) {
	limits := domain.Limits{SizeBytes: 40, SizeExplicit: true, MaxEntries: 3}
	records := []string{"alpha beta gamma delta\n"}

	measure := NewState(limits, 4)
	var queue []string
	for _, rec := range records {
		queue = append(queue, rec)
		if verdict, _ := measure.Consume(rec, nil); verdict != NeedMore {
			break
		}
	}

	want := measure.Entries()
	assembly := NewState(limits, 4)
	dst := make([]string, want)
	for _, rec := range queue {
		assembly.Consume(rec, dst)
	}
	if assembly.Entries() != want {
		t.Fatalf("assembly entries = %d, measurement found %d", assembly.Entries(), want)
	}
	for i, tok := range dst {
		if tok == "" {
			t.Errorf("dst[%d] never populated", i)
		}
	}
}

func TestTemplateFootprint(t *testing.T) {
	tests := []struct {
		name     string
		template []string
		explicit bool
		want     int
	}{
		{"echo with slots", []string{"echo"}, false, -1 + 4 + 1 + slotBytes},
		{"echo explicit", []string{"echo"}, true, 4},
		{"two args explicit", []string{"rm", "-f"}, true, -1 + 3 + 3},
		{"empty template", nil, false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TemplateFootprint(tt.template, tt.explicit); got != tt.want {
				t.Errorf("TemplateFootprint() = %d, want %d", got, tt.want)
			}
		})
	}
}
