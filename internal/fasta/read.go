// Package fasta reads target sequences from FASTA files.
package fasta

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is a single FASTA entry with its header and whitespace removed
// and its bases upper-cased.
type Record struct {
	// ID is the first word of the header. In >pET28a_SHRT its "pET28a_SHRT"
	ID string

	// Seq is the flat sequence
	Seq string
}

// Read parses every record in the FASTA file at path. A path of "-" reads
// stdin and a ".gz" suffix is decompressed.
func Read(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s", path)
	}

	return records, nil
}

// ReadSeq concatenates every record in the file into one sequence.
// The record's ID is taken from the first header.
func ReadSeq(path string) (Record, error) {
	records, err := Read(path)
	if err != nil {
		return Record{}, err
	}

	return Join(records), nil
}

// Join concatenates the records' sequences in order.
func Join(records []Record) Record {
	if len(records) == 0 {
		return Record{}
	}

	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(r.Seq)
	}
	return Record{ID: records[0].ID, Seq: sb.String()}
}

// Parse reads FASTA records from r.
func Parse(r io.Reader) (records []Record, err error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}

		bases := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			bases[i] = byte(l)
		}

		records = append(records, Record{
			ID:  s.Name(),
			Seq: strings.ToUpper(string(bases)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}

	return records, nil
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}

	return fh, nil
}
