package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"mesabot/internal/application"
	"mesabot/internal/config"
	"mesabot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	catalog output.Catalog
	handler *Handler
	logger  *slog.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, catalog output.Catalog, localeRepo output.UserLocaleRepository, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	localeUC := application.NewLocaleService(localeRepo, catalog, logger)
	translationUC := application.NewTranslationService(catalog)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}

	handler := NewHandler(localeUC, translationUC, catalog, NewRoleAuthorizer(cfg.GMRoleID), logger)

	bot := &Bot{
		session: s,
		config:  cfg,
		catalog: catalog,
		handler: handler,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandLanguage:
			b.handler.HandleLanguageCommand(s, i)
		case commandI18n:
			b.handler.HandleI18nCommand(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == selectLocale {
			b.handler.HandleLocaleSelect(s, i)
		}
	}
}

// Start opens the session, registers the slash commands and blocks until
// ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range BuildCommands(b.catalog) {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Warn("register command", slog.String("command", cmd.Name), slog.Any("error", err))
		}
	}

	b.logger.Info("bot online", slog.String("user", b.session.State.User.Username))
	<-ctx.Done()
	return nil
}
