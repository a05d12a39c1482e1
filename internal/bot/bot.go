// Package bot adapts Telegram conversations onto the dialog engine.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"placebot/internal/dialog"
	"placebot/internal/models"
	"placebot/internal/resource"
)

// DialogFactory produces a fresh root dialog for every /location command.
type DialogFactory func() dialog.Dialog

// Bot runs the Telegram long-polling loop and feeds updates into the dialog
// engine.
type Bot struct {
	api       *tgbotapi.BotAPI
	engine    *dialog.Engine
	sender    *sender
	newDialog DialogFactory
	resources *resource.Manager
	log       zerolog.Logger
}

// New wires a bot around an authorized Telegram API client.
func New(api *tgbotapi.BotAPI, newDialog DialogFactory, resources *resource.Manager, log zerolog.Logger) *Bot {
	b := &Bot{
		api:       api,
		sender:    newSender(api),
		newDialog: newDialog,
		resources: resources,
		log:       log,
	}
	b.engine = dialog.NewEngine(b.sender, b.placeCompleted, log)
	return b
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				b.log.Error().
					Err(err).
					Int64("chat_id", update.Message.Chat.ID).
					Msg("failed to handle message")
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "location":
			return b.engine.Begin(ctx, chatID, b.newDialog())
		default:
			return b.sender.SendText(ctx, chatID, fmt.Sprintf("Unknown command /%s. Send /location to begin.", msg.Command()))
		}
	}

	err := b.engine.HandleMessage(ctx, chatID, toDialogMessage(msg))
	if err == dialog.ErrNoActiveDialog {
		return b.sender.SendText(ctx, chatID, "Send /location to begin.")
	}
	return err
}

func toDialogMessage(msg *tgbotapi.Message) *dialog.Message {
	out := &dialog.Message{Text: msg.Text}
	if msg.Location != nil {
		out.Point = &models.GeoPoint{
			Latitude:  msg.Location.Latitude,
			Longitude: msg.Location.Longitude,
		}
	}
	return out
}

func (b *Bot) placeCompleted(ctx context.Context, conversationID int64, result any) error {
	place, ok := result.(*models.Place)
	if !ok {
		return fmt.Errorf("bot: dialog completed with %T, want *models.Place", result)
	}

	b.log.Info().
		Int64("chat_id", conversationID).
		Str("place_type", place.Type).
		Msg("location dialog completed")

	text := b.resources.Get("done.place") + "\n" + formatPlace(place)
	return b.sender.sendFinal(ctx, conversationID, text)
}

func formatPlace(place *models.Place) string {
	var lines []string
	if place.Name != "" {
		lines = append(lines, place.Name)
	}
	if addr := place.Address; addr != nil {
		if addr.StreetAddress != "" {
			lines = append(lines, addr.StreetAddress)
		}
		cityLine := joinNonEmpty([]string{addr.Locality, addr.Region, addr.PostalCode}, ", ")
		if cityLine != "" {
			lines = append(lines, cityLine)
		}
		if addr.Country != "" {
			lines = append(lines, addr.Country)
		}
		if len(lines) == 0 && addr.FormattedAddress != "" {
			lines = append(lines, addr.FormattedAddress)
		}
	}
	if place.Geo != nil {
		lines = append(lines, fmt.Sprintf("(%.6f, %.6f)", place.Geo.Latitude, place.Geo.Longitude))
	}
	if len(lines) == 0 {
		return "an unnamed place"
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(parts []string, sep string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
