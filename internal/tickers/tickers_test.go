package tickers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed case and blanks", "aapl, MSFT ,, goog", []string{"AAPL", "MSFT", "GOOG"}},
		{"single", "tsla", []string{"TSLA"}},
		{"empty", "", nil},
		{"only separators", " , , ", nil},
		{"duplicates kept", "AAPL,aapl", []string{"AAPL", "AAPL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.input))
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_tickers.txt")
	content := `# watchlist
AAPL
MSFT # microsoft

  GOOG
# trailing comment line
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
