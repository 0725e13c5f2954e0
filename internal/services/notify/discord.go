package notify

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/logger"
)

// DiscordConfig holds the configuration for the Discord notifier
type DiscordConfig struct {
	// Discord bot token
	Token string

	// ChannelID is the channel announcements are posted to
	ChannelID string
}

// Discord announces raffle events to a Discord channel
type Discord struct {
	session   *discordgo.Session
	channelID string
	rand      *rand.Rand
}

// NewDiscord creates a new Discord notifier
func NewDiscord(cfg *DiscordConfig) (*Discord, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	source := rand.NewSource(time.Now().UnixNano())

	return &Discord{
		session:   session,
		channelID: cfg.ChannelID,
		rand:      rand.New(source),
	}, nil
}

// winnerMessages are the announcement templates for a resolved round,
// formatted with the winner ID and the pool amount
var winnerMessages = []string{
	"🎉 The draw is in! <%s> takes the whole pot of %d!",
	"🏆 Round over — <%s> walks away with %d. Better luck next time, everyone else.",
	"🎰 And the winner is... <%s>! The pool of %d is all theirs.",
}

// EntryRecorded announces a new entry in the current round
func (d *Discord) EntryRecorded(ctx context.Context, input *EntryRecordedInput) {
	msg := fmt.Sprintf("🎟️ <%s> bought a ticket for %d. %d tickets in, pool is now %d.",
		input.PlayerID, input.Amount, input.PlayerCount, input.Pool)
	d.send(msg)
}

// DrawRequested announces that a randomness request went out
func (d *Discord) DrawRequested(ctx context.Context, input *DrawRequestedInput) {
	msg := fmt.Sprintf("🎲 Entries are closed, the draw is rolling (request %s). Winner announced shortly!",
		input.RequestID)
	d.send(msg)
}

// WinnerPicked announces a resolved round
func (d *Discord) WinnerPicked(ctx context.Context, input *WinnerPickedInput) {
	template := winnerMessages[d.rand.Intn(len(winnerMessages))]
	d.send(fmt.Sprintf(template, input.Winner, input.Amount))
}

func (d *Discord) send(msg string) {
	if _, err := d.session.ChannelMessageSend(d.channelID, msg); err != nil {
		logger.Errorf("Failed to send Discord announcement: %v", err)
	}
}

// Close releases the underlying Discord session
func (d *Discord) Close() error {
	return d.session.Close()
}
