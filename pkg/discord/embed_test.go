package discord_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mesabot/internal/domain/entities"
	"mesabot/pkg/discord"
)

func more(n int) string { return fmt.Sprintf("… +%d", n) }

func TestFormatKeyList(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "none", discord.FormatKeyList(nil, 1024, "none", more))
	})

	t.Run("fits", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "`a.b`\n`c`", discord.FormatKeyList([]string{"a.b", "c"}, 1024, "none", more))
	})

	t.Run("truncates under the limit", func(t *testing.T) {
		t.Parallel()
		keys := make([]string, 200)
		for i := range keys {
			keys[i] = fmt.Sprintf("commands.key_%03d", i)
		}
		got := discord.FormatKeyList(keys, 1024, "none", more)
		require.LessOrEqual(t, len(got), 1024)
		require.True(t, strings.HasPrefix(got, "`commands.key_000`\n"))
		lines := strings.Split(got, "\n")
		shown := len(lines) - 1
		require.Equal(t, more(len(keys)-shown), lines[len(lines)-1])
	})
}

func TestBuildLocaleDiffEmbed(t *testing.T) {
	t.Parallel()

	labels := discord.DiffLabels{
		Title:      "pt ↔ en",
		MissingInA: "Missing in pt",
		MissingInB: "Missing in en",
		None:       "none",
		More:       more,
	}
	embed := discord.BuildLocaleDiffEmbed(labels, entities.LocaleDiff{
		A:          "pt",
		B:          "en",
		MissingInB: []string{"errors.generic"},
	})

	require.Equal(t, "pt ↔ en", embed.Title)
	require.Len(t, embed.Fields, 2)
	require.Equal(t, "Missing in pt", embed.Fields[0].Name)
	require.Equal(t, "none", embed.Fields[0].Value)
	require.Equal(t, "`errors.generic`", embed.Fields[1].Value)
}
