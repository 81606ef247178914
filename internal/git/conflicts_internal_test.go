package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnmerged(t *testing.T) {
	t.Run("groups stages by path", func(t *testing.T) {
		output := "100644 aaa 1\ta.txt\x00100644 bbb 2\ta.txt\x00100644 ccc 3\ta.txt\x00" +
			"100755 ddd 2\tdir/b c.sh\x00"

		conflicts, err := parseUnmerged(output)
		require.NoError(t, err)
		require.Equal(t, []Conflict{
			{
				Path:     "a.txt",
				Ancestor: &IndexEntry{Mode: "100644", ID: "aaa"},
				Ours:     &IndexEntry{Mode: "100644", ID: "bbb"},
				Theirs:   &IndexEntry{Mode: "100644", ID: "ccc"},
			},
			{
				Path: "dir/b c.sh",
				Ours: &IndexEntry{Mode: "100755", ID: "ddd"},
			},
		}, conflicts)
	})

	t.Run("empty output", func(t *testing.T) {
		conflicts, err := parseUnmerged("")
		require.NoError(t, err)
		require.Empty(t, conflicts)
	})

	t.Run("rejects malformed records", func(t *testing.T) {
		_, err := parseUnmerged("100644 aaa\x00")
		require.Error(t, err)

		_, err = parseUnmerged("100644 aaa 0\ta.txt\x00")
		require.Error(t, err)
	})
}

func TestConflictRecords(t *testing.T) {
	var b strings.Builder
	writeRemoval(&b, "a.txt")
	writeStage(&b, "a.txt", nil, 1)
	writeStage(&b, "a.txt", &IndexEntry{Mode: "100644", ID: "bbb"}, 2)

	require.Equal(t, "0 "+zeroID+"\ta.txt\x00100644 bbb 2\ta.txt\x00", b.String())
}
