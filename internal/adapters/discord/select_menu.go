package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "mesabot/pkg/discord"
)

const selectLocale = "select_locale"

// HandleLanguageCommand handles /idioma: with a locale option it stores the
// preference right away, without one it offers a select menu.
func (h *Handler) HandleLanguageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i.Interaction)
	locale := h.localeUseCase.ResolveLocale(ctx, userID, string(i.Locale))

	choice := optionString(i.ApplicationCommandData().Options, optionLocale)
	if choice == "" {
		_ = s.InteractionRespond(i.Interaction, h.localeMenu(locale))
		return
	}
	respondEphemeral(s, i.Interaction, h.applyLocaleChoice(ctx, userID, string(i.Locale), locale, choice))
}

// HandleLocaleSelect handles the select menu sent by HandleLanguageCommand.
func (h *Handler) HandleLocaleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	ctx := context.Background()
	userID := interactionUserID(i.Interaction)
	locale := h.localeUseCase.ResolveLocale(ctx, userID, string(i.Locale))
	respondEphemeral(s, i.Interaction, h.applyLocaleChoice(ctx, userID, string(i.Locale), locale, data.Values[0]))
}

// applyLocaleChoice stores or clears the preference and returns the reply,
// rendered in the locale the user ends up with.
func (h *Handler) applyLocaleChoice(ctx context.Context, userID, clientLocale, current, choice string) string {
	if choice == clearLocaleValue {
		if err := h.localeUseCase.ClearUserLocale(ctx, userID); err != nil {
			h.logger.Error("clear user locale", "user_id", userID, "error", err)
			return h.tr(current, pkgdiscord.KeyErrGeneric, pkgdiscord.DomainErrorFallback(err), nil)
		}
		next := h.localeUseCase.ResolveLocale(ctx, userID, clientLocale)
		return h.tr(next, "locale.cleared", "Preferência removida. Usando {locale}.", map[string]any{
			"locale": h.localeName(next, next),
		})
	}

	locale, err := h.localeUseCase.SetUserLocale(ctx, userID, choice)
	if err != nil {
		h.logger.Warn("set user locale", "user_id", userID, "choice", choice, "error", err)
		return h.tr(current, pkgdiscord.DomainErrorKey(err), pkgdiscord.DomainErrorFallback(err), nil)
	}
	return h.tr(locale, "locale.set", "Idioma definido: {locale}.", map[string]any{
		"locale": h.localeName(locale, locale),
	})
}

func (h *Handler) localeName(display, locale string) string {
	return h.tr(display, "locale.names."+locale, locale, nil)
}

func (h *Handler) localeMenu(locale string) *discordgo.InteractionResponse {
	supported := h.catalog.SupportedLocales()
	options := make([]discordgo.SelectMenuOption, 0, len(supported)+1)
	for _, loc := range supported {
		options = append(options, discordgo.SelectMenuOption{
			Label:   h.localeName(locale, loc),
			Value:   loc,
			Default: loc == locale,
		})
	}
	options = append(options, discordgo.SelectMenuOption{
		Label: h.tr(locale, "locale.clear_option", "Usar o idioma do Discord", nil),
		Value: clearLocaleValue,
	})

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.tr(locale, "locale.select_prompt", "Escolha seu idioma:", nil),
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    selectLocale,
							Placeholder: h.tr(locale, "locale.select_placeholder", "Selecionar idioma", nil),
							Options:     options,
						},
					},
				},
			},
		},
	}
}
