package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mesabot/internal/domain"
	pkgdiscord "mesabot/pkg/discord"
)

// HandleI18nCommand handles the game-master /i18n command group.
func (h *Handler) HandleI18nCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := h.localeUseCase.ResolveLocale(context.Background(), interactionUserID(i.Interaction), string(i.Locale))

	if i.GuildID == "" || i.Member == nil {
		respondEphemeral(s, i.Interaction, h.errorText(locale, domain.ErrGuildOnly))
		return
	}
	if !h.authorizer.IsGameMaster(i.Member) {
		respondEphemeral(s, i.Interaction, h.errorText(locale, domain.ErrNotGameMaster))
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) > 0 {
		h.logger.Info("i18n command", slog.String("sub", options[0].Name), slog.String("user_id", interactionUserID(i.Interaction)))
	}
	_ = s.InteractionRespond(i.Interaction, h.i18nCommandResponse(locale, options))
}

// i18nCommandResponse picks the subcommand out of the command options.
func (h *Handler) i18nCommandResponse(locale string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	if len(options) == 0 {
		return ephemeral(h.errorText(locale, nil))
	}
	return h.i18nResponse(locale, options[0].Name, options[0].Options)
}

// i18nResponse runs one /i18n subcommand and renders its reply in locale.
func (h *Handler) i18nResponse(locale, sub string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	switch sub {
	case subLocales:
		overview, err := h.translationUseCase.Overview()
		if err != nil {
			h.logger.Error("locales overview", slog.Any("error", err))
			return ephemeral(h.errorText(locale, err))
		}
		none := h.tr(locale, "i18n.diff.none", "nenhuma", nil)
		return ephemeralEmbed(pkgdiscord.BuildListEmbed(
			h.tr(locale, "i18n.locales.title", "Idiomas", nil),
			[]*discordgo.MessageEmbedField{
				{Name: h.tr(locale, "i18n.locales.default", "Padrão", nil), Value: overview.Default, Inline: true},
				{Name: h.tr(locale, "i18n.locales.supported", "Suportados", nil), Value: joinOr(overview.Supported, none), Inline: true},
				{Name: h.tr(locale, "i18n.locales.available", "Em disco", nil), Value: joinOr(overview.Available, none), Inline: true},
			},
		))

	case subDiff:
		diff := h.translationUseCase.Diff(optionString(options, optionA), optionString(options, optionB))
		args := map[string]any{"a": diff.A, "b": diff.B}
		labels := pkgdiscord.DiffLabels{
			Title:      h.tr(locale, "i18n.diff.title", "{a} ↔ {b}", args),
			MissingInA: h.tr(locale, "i18n.diff.missing_in", "Faltando em {locale}", map[string]any{"locale": diff.A}),
			MissingInB: h.tr(locale, "i18n.diff.missing_in", "Faltando em {locale}", map[string]any{"locale": diff.B}),
			None:       h.tr(locale, "i18n.diff.none", "nenhuma", nil),
			More: func(n int) string {
				return h.plural(locale, "i18n.diff.more", n, "… e mais {count}", nil)
			},
		}
		resp := ephemeralEmbed(pkgdiscord.BuildLocaleDiffEmbed(labels, diff))
		missing := len(diff.MissingInA) + len(diff.MissingInB)
		resp.Data.Content = h.plural(locale, "i18n.diff.summary", missing, "{count} chaves divergentes entre {a} e {b}.", args)
		return resp

	case subReload:
		h.translationUseCase.Reload()
		return ephemeral(h.tr(locale, "i18n.reload.done", "Traduções recarregadas.", nil))

	case subDefault:
		def, err := h.translationUseCase.SetDefaultLocale(optionString(options, optionLocale))
		if err != nil {
			return ephemeral(h.errorText(locale, err))
		}
		h.logger.Info("default locale changed from discord", slog.String("locale", def))
		return ephemeral(h.tr(locale, "i18n.default.done", "Idioma padrão: {locale}.", map[string]any{"locale": def}))

	case subKey:
		target := locale
		if opt := optionString(options, optionLocale); opt != "" {
			target = opt
		}
		key := optionString(options, optionKey)
		value, err := h.translationUseCase.Preview(target, key)
		if err != nil {
			return ephemeral(h.errorText(locale, err))
		}
		return ephemeral(h.tr(locale, "i18n.key.preview", "`{key}` ({locale}): {value}", map[string]any{
			"key":    strings.TrimSpace(key),
			"locale": h.catalog.Normalize(target),
			"value":  value,
		}))
	}
	return ephemeral(h.errorText(locale, nil))
}

func (h *Handler) errorText(locale string, err error) string {
	return h.tr(locale, pkgdiscord.DomainErrorKey(err), pkgdiscord.DomainErrorFallback(err), nil)
}

// plural renders a count-dependent message, falling back like tr does.
func (h *Handler) plural(locale, key string, count int, fallback string, args map[string]any) string {
	s, err := h.catalog.TranslatePlural(locale, key, count, args)
	if err == nil {
		return s
	}
	h.logger.Warn("plural format failed, using fallback", slog.String("key", key), slog.Any("error", err))
	withCount := map[string]any{"count": count}
	for k, v := range args {
		withCount[k] = v
	}
	if out, err := h.catalog.Format(fallback, withCount); err == nil {
		return out
	}
	return fallback
}

func joinOr(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}
