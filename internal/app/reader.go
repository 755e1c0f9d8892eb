package app

import (
	"bufio"
	"io"

	"github.com/bft-labs/xargo/internal/domain"
	"github.com/bft-labs/xargo/internal/ports"
)

// recordReader yields newline- or NUL-terminated records from a stream.
// In NUL mode the terminator is stripped, since the whole record becomes one
// token; in whitespace mode the trailing newline is kept and consumed by the
// tokenizer as ordinary whitespace.
type recordReader struct {
	br    *bufio.Reader
	delim byte
	strip bool
}

// NewRecordReader wraps r for the given delimiter mode.
func NewRecordReader(r io.Reader, mode domain.Mode) ports.RecordReader {
	if mode == domain.NulDelimited {
		return &recordReader{br: bufio.NewReader(r), delim: 0, strip: true}
	}
	return &recordReader{br: bufio.NewReader(r), delim: '\n'}
}

// Next returns the next record. A final record without a trailing delimiter
// is returned as-is; the following call reports io.EOF.
func (r *recordReader) Next() (string, error) {
	data, err := r.br.ReadString(r.delim)
	if err != nil {
		if err == io.EOF && data != "" {
			return data, nil
		}
		return "", err
	}
	if r.strip {
		data = data[:len(data)-1]
	}
	return data, nil
}
