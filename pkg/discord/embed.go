package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"mesabot/internal/domain/entities"
)

const (
	embedColor = 0x5865F2

	// maxFieldValue is Discord's limit for an embed field value.
	maxFieldValue = 1024
	// moreLineReserve leaves room for the "and N more" line.
	moreLineReserve = 64
)

// DiffLabels holds the already-localized texts of a locale diff embed.
type DiffLabels struct {
	Title      string
	MissingInA string
	MissingInB string
	None       string
	// More renders the line appended when n keys did not fit.
	More func(n int) string
}

// BuildLocaleDiffEmbed renders the keys each locale lacks as two fields.
func BuildLocaleDiffEmbed(labels DiffLabels, diff entities.LocaleDiff) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: labels.Title,
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: labels.MissingInA, Value: FormatKeyList(diff.MissingInA, maxFieldValue, labels.None, labels.More)},
			{Name: labels.MissingInB, Value: FormatKeyList(diff.MissingInB, maxFieldValue, labels.None, labels.More)},
		},
	}
}

// BuildListEmbed renders a titled embed with one "name: value" field per entry.
func BuildListEmbed(title string, fields []*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:  title,
		Color:  embedColor,
		Fields: fields,
	}
}

// FormatKeyList renders keys one per line as inline code, staying under limit.
func FormatKeyList(keys []string, limit int, none string, more func(n int) string) string {
	if len(keys) == 0 {
		return none
	}
	var b strings.Builder
	for idx, key := range keys {
		line := "`" + key + "`"
		if b.Len()+len(line)+1 > limit-moreLineReserve {
			if more != nil {
				b.WriteString(more(len(keys) - idx))
			}
			return b.String()
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
