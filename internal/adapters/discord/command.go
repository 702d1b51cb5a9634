package discord

import (
	"github.com/bwmarrin/discordgo"

	"mesabot/internal/ports/output"
)

const (
	commandLanguage = "idioma"
	commandI18n     = "i18n"

	subLocales = "locales"
	subDiff    = "diff"
	subReload  = "reload"
	subDefault = "default"
	subKey     = "key"

	optionLocale = "locale"
	optionA      = "a"
	optionB      = "b"
	optionKey    = "key"

	// clearLocaleValue is the choice that removes a stored preference.
	clearLocaleValue = "clear"
)

// discordLocales lists the Discord client locales each canonical locale covers.
var discordLocales = map[string][]discordgo.Locale{
	"pt": {discordgo.PortugueseBR},
	"en": {discordgo.EnglishUS, discordgo.EnglishGB},
}

// commandText renders command metadata in the default locale, with
// per-client localizations for every supported locale.
type commandText struct {
	catalog output.Catalog
}

func (c commandText) text(key string) string {
	return c.catalog.T(c.catalog.DefaultLocale(), key, nil)
}

func (c commandText) localizations(key string) map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string)
	for _, loc := range c.catalog.SupportedLocales() {
		for _, dl := range discordLocales[loc] {
			out[dl] = c.catalog.T(loc, key, nil)
		}
	}
	return out
}

func (c commandText) localeChoices(withClear bool) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(c.catalog.SupportedLocales())+1)
	for _, loc := range c.catalog.SupportedLocales() {
		key := "locale.names." + loc
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:              c.text(key),
			NameLocalizations: c.localizations(key),
			Value:             loc,
		})
	}
	if withClear {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:              c.text("locale.clear_option"),
			NameLocalizations: c.localizations("locale.clear_option"),
			Value:             clearLocaleValue,
		})
	}
	return choices
}

func (c commandText) stringOption(name, key string, required bool, choices []*discordgo.ApplicationCommandOptionChoice) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionString,
		Name:                     name,
		Description:              c.text(key),
		DescriptionLocalizations: c.localizations(key),
		Required:                 required,
		Choices:                  choices,
	}
}

func (c commandText) subcommand(name, key string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     name,
		Description:              c.text(key),
		DescriptionLocalizations: c.localizations(key),
		Options:                  options,
	}
}

// BuildCommands returns the slash commands with descriptions taken from the catalog.
func BuildCommands(catalog output.Catalog) []*discordgo.ApplicationCommand {
	c := commandText{catalog: catalog}
	dmAllowed := false

	languageDesc := c.localizations("commands.idioma.description")
	i18nDesc := c.localizations("commands.i18n.description")

	return []*discordgo.ApplicationCommand{
		{
			Name:                     commandLanguage,
			Description:              c.text("commands.idioma.description"),
			DescriptionLocalizations: &languageDesc,
			Options: []*discordgo.ApplicationCommandOption{
				c.stringOption(optionLocale, "commands.idioma.option_locale", false, c.localeChoices(true)),
			},
		},
		{
			Name:                     commandI18n,
			Description:              c.text("commands.i18n.description"),
			DescriptionLocalizations: &i18nDesc,
			DMPermission:             &dmAllowed,
			Options: []*discordgo.ApplicationCommandOption{
				c.subcommand(subLocales, "commands.i18n.locales"),
				c.subcommand(subDiff, "commands.i18n.diff",
					c.stringOption(optionA, "commands.i18n.option_a", true, c.localeChoices(false)),
					c.stringOption(optionB, "commands.i18n.option_b", true, c.localeChoices(false)),
				),
				c.subcommand(subReload, "commands.i18n.reload"),
				c.subcommand(subDefault, "commands.i18n.default",
					c.stringOption(optionLocale, "commands.i18n.option_locale", true, c.localeChoices(false)),
				),
				c.subcommand(subKey, "commands.i18n.key",
					c.stringOption(optionKey, "commands.i18n.option_key", true, nil),
					c.stringOption(optionLocale, "commands.i18n.option_locale", false, c.localeChoices(false)),
				),
			},
		},
	}
}
