package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jjtimmons/gibfrag/internal/frag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testResult(t *testing.T) *Result {
	t.Helper()

	seq := strings.Repeat("ATCG", 600)
	params := frag.DefaultParams()
	frags, err := frag.Partition(seq, params)
	require.NoError(t, err)

	return NewResult("mock_target", seq, params, frags, 15*time.Millisecond)
}

func Test_NewResult(t *testing.T) {
	r := testResult(t)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 2400, r.Length)
	assert.Len(t, r.Fragments, 3)
	assert.Len(t, r.Junctions, 2)
	assert.True(t, r.Verified())
	assert.InDelta(t, 0.015, r.Execution, 1e-9)

	r.Junctions[1].Match = false
	assert.False(t, r.Verified())
}

func Test_Marshal(t *testing.T) {
	r := testResult(t)

	t.Run("json", func(t *testing.T) {
		out, err := Marshal(JSON, []*Result{r})
		require.NoError(t, err)

		var decoded Output
		require.NoError(t, json.Unmarshal(out, &decoded))
		require.Len(t, decoded.Designs, 1)
		assert.Equal(t, r.Fragments, decoded.Designs[0].Fragments)
		assert.Equal(t, r.Params, decoded.Designs[0].Params)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Marshal(YAML, []*Result{r})
		require.NoError(t, err)

		var decoded Output
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		require.Len(t, decoded.Designs, 1)
		assert.Equal(t, r.Fragments, decoded.Designs[0].Fragments)
	})

	t.Run("genbank", func(t *testing.T) {
		out, err := Marshal(Genbank, []*Result{r, r})
		require.NoError(t, err)

		gb := string(out)
		assert.True(t, strings.HasPrefix(gb, "LOCUS       mock_target"))
		assert.Contains(t, gb, "2400 bp DNA      linear")
		assert.Contains(t, gb, "     misc_feature    1..786\n                     /label=\"Fragment 1\"\n")
		assert.Contains(t, gb, "     misc_feature    767..1552\n")
		assert.Contains(t, gb, "     misc_feature    1533..2400\n")
		assert.Contains(t, gb, "        1 atcgatcgat cgatcgatcg")
		assert.Equal(t, 2, strings.Count(gb, "//\n"))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Marshal(Format("fasta"), []*Result{r})
		assert.Error(t, err)
	})
}

func Test_Write(t *testing.T) {
	r := testResult(t)
	filename := filepath.Join(t.TempDir(), "design.json")

	out, err := Write(filename, JSON, []*Result{r})
	require.NoError(t, err)

	written, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, out, written)

	_, err = Write(filepath.Join(t.TempDir(), "missing", "design.json"), JSON, []*Result{r})
	assert.Error(t, err)
}

func Test_FormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.json", JSON},
		{"out.yaml", YAML},
		{"out.YML", YAML},
		{"out.gb", Genbank},
		{"out.gbk", Genbank},
		{"out", JSON},
		{"out.txt", JSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}

	_, err := ParseFormat("fasta")
	assert.Error(t, err)
}

func Test_Report(t *testing.T) {
	r := testResult(t)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r, 10, false))
	report := buf.String()

	assert.Contains(t, report, "mock_target: 2400 bp, 3 fragments")
	assert.Contains(t, report, "Coordinates: 0–786")
	assert.Contains(t, report, "Length: 868 bp")
	assert.Contains(t, report, "First 10bp: ATCGATCGAT...")
	assert.Contains(t, report, "Overlap with Fragment 2: "+r.Junctions[0].Seq)
	assert.Contains(t, report, "✓ Fragment 1 ↔ Fragment 2: overlap matches")
	assert.Contains(t, report, "✓ Fragment 2 ↔ Fragment 3: overlap matches")

	r.Junctions[0].Match = false
	buf.Reset()
	require.NoError(t, Report(&buf, r, 10, false))
	assert.Contains(t, buf.String(), "✗ Fragment 1 ↔ Fragment 2: overlap mismatch")
}
