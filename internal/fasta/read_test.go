package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatten is the naive FASTA read: drop headers, strip and join lines.
func flatten(t *testing.T, path string) string {
	t.Helper()

	dat, err := os.ReadFile(path)
	require.NoError(t, err)

	var sb strings.Builder
	for _, line := range strings.Split(string(dat), "\n") {
		if strings.HasPrefix(line, ">") {
			continue
		}
		sb.WriteString(strings.TrimSpace(line))
	}
	return strings.ToUpper(sb.String())
}

func Test_Read(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantIDs []string
		wantLen []int
	}{
		{
			"single record",
			filepath.Join("..", "..", "test", "input", "target.fa"),
			[]string{"pET28a_SHRT"},
			[]int{2400},
		},
		{
			"gzipped single record",
			filepath.Join("..", "..", "test", "input", "target.fa.gz"),
			[]string{"pET28a_SHRT"},
			[]int{2400},
		},
		{
			"multiple records",
			filepath.Join("..", "..", "test", "input", "multi.fa"),
			[]string{"insert_1", "insert_2"},
			[]int{1500, 2500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Read(tt.path)
			require.NoError(t, err)
			require.Len(t, records, len(tt.wantIDs))

			for i, r := range records {
				assert.Equal(t, tt.wantIDs[i], r.ID)
				assert.Len(t, r.Seq, tt.wantLen[i])
				assert.NotContains(t, r.Seq, "\n")
			}
		})
	}
}

func Test_ReadSeq(t *testing.T) {
	for _, name := range []string{"target.fa", "multi.fa"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("..", "..", "test", "input", name)

			r, err := ReadSeq(path)
			require.NoError(t, err)
			assert.Equal(t, flatten(t, path), r.Seq)
		})
	}

	gz, err := ReadSeq(filepath.Join("..", "..", "test", "input", "target.fa.gz"))
	require.NoError(t, err)
	plain, err := ReadSeq(filepath.Join("..", "..", "test", "input", "target.fa"))
	require.NoError(t, err)
	assert.Equal(t, plain, gz)
}

func Test_Parse(t *testing.T) {
	records, err := Parse(strings.NewReader(">frag_a some description\nacgt\nACGT\n>frag_b\nGGCC\n"))
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{ID: "frag_a", Seq: "ACGTACGT"},
		{ID: "frag_b", Seq: "GGCC"},
	}, records)
	assert.Equal(t, Record{ID: "frag_a", Seq: "ACGTACGTGGCC"}, Join(records))
	assert.Equal(t, Record{}, Join(nil))
}

func Test_Read_errors(t *testing.T) {
	_, err := Read(filepath.Join("..", "..", "test", "input", "missing.fa"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.fa")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = ReadSeq(empty)
	assert.Error(t, err)
}
