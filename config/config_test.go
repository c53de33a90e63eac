package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jjtimmons/gibfrag/internal/frag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("fragments: 4\nmin-length: 300\nmax-length: 500\noverlap: 15\nworkers: 0\n"), 0644))

	tests := []struct {
		name       string
		path       string
		wantParams frag.Params
		wantErr    bool
	}{
		{
			"defaults",
			"",
			frag.DefaultParams(),
			false,
		},
		{
			"settings file",
			settings,
			frag.Params{Fragments: 4, MinLength: 300, MaxLength: 500, Overlap: 15},
			false,
		},
		{
			"missing settings file",
			filepath.Join(dir, "missing.yaml"),
			frag.Params{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(viper.New(), tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantParams, c.Params())
			assert.GreaterOrEqual(t, c.Workers, 1)
		})
	}
}

func Test_Load_overrides(t *testing.T) {
	t.Setenv("GIBFRAG_MIN_LENGTH", "350")

	v := viper.New()
	v.Set("overlap", 30)

	c, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 350, c.MinLength)
	assert.Equal(t, 30, c.Overlap)
	assert.Equal(t, 800, c.MaxLength)
	assert.Equal(t, 50, c.Preview)
}
