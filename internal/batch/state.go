// Package batch implements the streaming token-batching algorithm: it decides
// how many input tokens fit into one invocation without exceeding the byte
// budget or the entry cap, and without ever splitting a token across batches.
//
// The algorithm is two-pass. During accumulation every record is measured
// (Consume with a nil destination) purely to detect the limit; during assembly
// the same records are walked again with the argv tail as destination. Both
// passes run the identical limit logic against identical counters, so they
// agree exactly on how many tokens fit.
package batch

import (
	"strconv"

	"github.com/bft-labs/xargo/internal/domain"
)

// slotBytes approximates the argv pointer slot the kernel charges per
// argument against ARG_MAX.
const slotBytes = strconv.IntSize / 8

// Verdict reports how far Consume got with one record.
type Verdict int

const (
	// NeedMore means the record was fully consumed and no limit was hit;
	// the caller should read the next record into the same batch.
	NeedMore Verdict = iota

	// Split means a limit was hit mid-record. The unconsumed suffix is
	// returned alongside and must seed the next batch.
	Split

	// Exhausted means a limit was hit exactly at the end of the record;
	// there is nothing to carry over.
	Exhausted

	// Sentinel means the stop string was matched exactly. Input processing
	// ends entirely and the sentinel token joins no batch.
	Sentinel
)

// State carries the counters for the batch currently being accumulated.
// The byte counter is seeded from the template footprint so that the budget
// covers the whole serialized command line, not just the batch tokens.
type State struct {
	limits  domain.Limits
	seed    int
	entries int
	bytes   int
}

// NewState returns a fresh per-batch state seeded with the byte footprint of
// the template arguments.
func NewState(limits domain.Limits, seed int) *State {
	return &State{limits: limits, seed: seed, bytes: seed}
}

// Reset rewinds the counters to the template seed for the assembly pass or
// for the next batch.
func (st *State) Reset() {
	st.entries = 0
	st.bytes = st.seed
}

// Entries returns the number of tokens accepted into the current batch.
func (st *State) Entries() int {
	return st.entries
}

// Consume walks one raw record, charging each token against the entry cap and
// the byte budget. With a nil dst it only measures; with a destination it also
// stores each accepted token at the running entry index. The returned string
// is the unconsumed remainder and is non-empty only for a Split verdict.
//
// Counter mutations made before a Split are deliberately not rolled back:
// every batch restarts from a fresh seed, so partial charges never leak
// across batches, and the measurement and assembly passes stay in lockstep.
func (st *State) Consume(data string, dst []string) (Verdict, string) {
	if st.limits.Mode == domain.NulDelimited {
		return st.consumeRecord(data, dst)
	}
	return st.consumeTokens(data, dst)
}

// consumeTokens implements whitespace mode: split the record on runs of
// whitespace and account for each token individually.
func (st *State) consumeTokens(data string, dst []string) (Verdict, string) {
	i := 0
	for i < len(data) {
		for i < len(data) && isSpace(data[i]) {
			i++
		}
		if st.limits.MaxEntries > 0 && st.entries >= st.limits.MaxEntries {
			if i < len(data) {
				return Split, data[i:]
			}
			return Exhausted, ""
		}
		if i >= len(data) {
			break
		}
		start := i

		// One argv pointer slot plus one separator byte per token,
		// waived when the budget was given explicitly.
		if !st.limits.SizeExplicit {
			st.bytes += slotBytes + 1
		}
		for {
			st.bytes++
			if st.bytes >= st.limits.SizeBytes {
				return Split, data[start:]
			}
			if i >= len(data) || isSpace(data[i]) {
				break
			}
			i++
		}

		tok := data[start:i]
		if st.limits.StopString != "" && tok == st.limits.StopString {
			return Sentinel, ""
		}
		if dst != nil {
			dst[st.entries] = tok
		}
		if i < len(data) {
			i++ // the delimiter itself
		}
		st.entries++
	}
	return NeedMore, ""
}

// consumeRecord implements NUL-delimited mode: the whole record is one token.
// The pointer slot is always charged here, explicit budget or not.
func (st *State) consumeRecord(data string, dst []string) (Verdict, string) {
	total := st.bytes + slotBytes + len(data) + 1
	if total >= st.limits.SizeBytes || (st.limits.MaxEntries > 0 && st.entries >= st.limits.MaxEntries) {
		return Split, data
	}
	st.bytes = total
	if dst != nil {
		dst[st.entries] = data
	}
	st.entries++
	return NeedMore, ""
}

// TemplateFootprint returns the serialized byte footprint of the template
// arguments, the seed every batch starts from. It uses the same per-argument
// accounting as consumeTokens so the budget check stays consistent.
func TemplateFootprint(template []string, sizeExplicit bool) int {
	b := -1
	for _, a := range template {
		b += len(a) + 1
		if !sizeExplicit {
			b += slotBytes
		}
	}
	return b
}

// isSpace matches the whitespace set used for token splitting. It mirrors
// isspace(3) in the C locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// String implements fmt.Stringer for debug logging.
func (v Verdict) String() string {
	switch v {
	case NeedMore:
		return "need-more"
	case Split:
		return "split"
	case Exhausted:
		return "exhausted"
	case Sentinel:
		return "sentinel"
	}
	return "verdict(" + strconv.Itoa(int(v)) + ")"
}
