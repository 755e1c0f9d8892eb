package ports

// RecordReader yields one delimiter-terminated record per call.
// It returns io.EOF once input is exhausted; a final record without a
// trailing delimiter is yielded before EOF is reported.
type RecordReader interface {
	Next() (string, error)
}
