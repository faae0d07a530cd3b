// Package discord runs a bot that solves boards posted in chat and replies
// with the animated solution.
package discord

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"pathboard/internal/board"
	"pathboard/internal/nav"
	"pathboard/internal/render"
)

type Bot struct {
	session *discordgo.Session
	logger  *slog.Logger
	prefix  string
	admins  []string
	render  render.Options
}

// NewBot creates the bot session. An empty admins list allows everyone.
func NewBot(token, prefix string, admins []string, renderOpts render.Options, logger *slog.Logger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	if prefix == "" {
		prefix = "!path"
	}
	return &Bot{
		session: dg,
		logger:  logger,
		prefix:  prefix,
		admins:  admins,
		render:  renderOpts,
	}, nil
}

// Start opens the connection and serves commands until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	b.session.AddHandler(b.onMessageCreated)
	// MESSAGE_CONTENT intent is required to read the board text.
	b.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening discord connection: %w", err)
	}
	b.logger.Info("discord bot connected", "prefix", b.prefix)

	<-ctx.Done()

	return b.session.Close()
}

func (b *Bot) onMessageCreated(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	if len(b.admins) > 0 && !slices.Contains(b.admins, m.Author.ID) {
		return
	}

	switch {
	case m.Content == "!help":
		b.handleHelp(s, m)
	case strings.HasPrefix(m.Content, b.prefix):
		b.handlePath(s, m, strings.TrimPrefix(m.Content, b.prefix))
	}
}

func (b *Bot) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	help := fmt.Sprintf("`%s <board>`: solve a board and reply with the animated route.\n"+
		"Board rows: `.` open, `B` wall, one `S` start, one `X` end. Code fences welcome.", b.prefix)
	if _, err := s.ChannelMessageSend(m.ChannelID, help); err != nil {
		b.logger.Error("sending help", "error", err)
	}
}

func (b *Bot) handlePath(s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	text := stripFences(rest)
	brd, err := board.Parse(text)
	if err != nil {
		b.reply(s, m, "Board error: "+err.Error())
		return
	}
	path, err := brd.Solve()
	if err != nil {
		b.reply(s, m, "Search error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := render.EncodeGIF(&buf, brd, path, b.render); err != nil {
		b.logger.Error("rendering reply", "error", err)
		b.reply(s, m, "Could not render the animation.")
		return
	}

	content := fmt.Sprintf("Reached the end in %d steps (cost %.1f).", len(path)-1, nav.PathCost(path))
	if path[len(path)-1] != brd.End {
		content = fmt.Sprintf("End unreachable; closest route has %d steps.", len(path)-1)
	}
	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: content,
		Files: []*discordgo.File{
			{Name: "path.gif", ContentType: "image/gif", Reader: &buf},
		},
	})
	if err != nil {
		b.logger.Error("sending solution", "error", err)
	}
}

func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, msg string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
		b.logger.Error("sending reply", "error", err)
	}
}

// stripFences removes a surrounding Markdown code fence, if any, so boards
// can be posted either bare or fenced.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// A language tag on the opening fence line is noise.
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
