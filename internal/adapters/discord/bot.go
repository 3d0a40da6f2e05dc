package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"recruitbot/internal/application"
	"recruitbot/internal/config"
	"recruitbot/internal/domain"
	"recruitbot/internal/ports/output"
	"recruitbot/pkg/logx"
)

// Deps are the output adapters the bot is wired with.
type Deps struct {
	Schedule   output.ScheduleSource
	Ledger     output.Ledger
	Translator output.T
	Log        logx.Logger
}

// Bot is the Discord adapter.
type Bot struct {
	session   *discordgo.Session
	config    *config.Config
	handler   *Handler
	scheduler *Scheduler
	log       logx.Logger

	runCtx    context.Context
	readyOnce sync.Once
	wg        sync.WaitGroup
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, deps Deps) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	announcements := application.NewAnnouncementService(NewMessenger(s), deps.Translator, application.Audience{
		RecruitingChannelID: cfg.RecruitingChannelID,
		LunchChannelID:      cfg.LunchChannelID,
		LunchRoleID:         cfg.LunchRoleID,
		RecruitingRoleID:    cfg.RecruitingRoleID,
		JobSeekerRoleID:     cfg.JobSeekerRoleID,
		LunchMenuURL:        cfg.LunchMenuURL,
		Locale:              cfg.Locale,
		Location:            cfg.Location,
	})
	window := domain.ActiveWindow{Days: cfg.ActiveDays, Location: cfg.Location}
	recruiting := application.NewRecruitingService(deps.Schedule, deps.Ledger, announcements, window, deps.Log.With(logx.String("component", "recruiting")))

	bot := &Bot{
		session:   s,
		config:    cfg,
		handler:   NewHandler(announcements, deps.Translator, deps.Log.With(logx.String("component", "commands"))),
		scheduler: NewScheduler(recruiting, cfg.PollInterval, deps.Log.With(logx.String("component", "scheduler"))),
		log:       deps.Log,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleInteraction)
}

// handleReady starts the polling loop the first time the gateway is ready.
// Reconnections fire Ready again and must not start a second loop.
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	inGuild := false
	for _, g := range r.Guilds {
		if g.ID == b.config.GuildID {
			inGuild = true
			break
		}
	}
	b.log.Info("🤖 Connecté à Discord",
		logx.String("user", r.User.String()),
		logx.String("guild_id", b.config.GuildID),
		logx.Bool("in_guild", inGuild),
	)
	if !inGuild {
		b.log.Warn("⚠️ Le bot n'est pas membre du serveur configuré", logx.String("guild_id", b.config.GuildID))
	}

	b.readyOnce.Do(func() {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.scheduler.Run(b.runCtx)
		}()
	})
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == lunchCommandName {
		b.handler.HandleLunchCommand(s, i)
	}
}

// Start runs the bot until ctx is cancelled, then stops the polling loop
// and closes the gateway connection.
func (b *Bot) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	b.runCtx = runCtx

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	cmd := lunchCommand(b.handler.translator)
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
		b.log.Error("⚠️ Erreur lors de l'enregistrement de la commande", logx.String("command", cmd.Name), logx.Err(err))
	}

	b.log.Info("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	<-ctx.Done()

	b.log.Info("Arrêt en cours...")
	cancel()
	b.wg.Wait()
	return nil
}
