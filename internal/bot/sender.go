package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender implements dialog.Sender over the Telegram Bot API.
type sender struct {
	api *tgbotapi.BotAPI
}

func newSender(api *tgbotapi.BotAPI) *sender {
	return &sender{api: api}
}

func (s *sender) SendText(ctx context.Context, conversationID int64, text string) error {
	msg := tgbotapi.NewMessage(conversationID, text)
	return s.send(ctx, msg)
}

func (s *sender) RequestLocation(ctx context.Context, conversationID int64, text, buttonLabel string) error {
	msg := tgbotapi.NewMessage(conversationID, text)
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation(buttonLabel),
		),
	)
	keyboard.OneTimeKeyboard = true
	msg.ReplyMarkup = keyboard
	return s.send(ctx, msg)
}

func (s *sender) SendChoices(ctx context.Context, conversationID int64, text string, choices []string) error {
	msg := tgbotapi.NewMessage(conversationID, text)
	rows := make([][]tgbotapi.KeyboardButton, len(choices))
	for i, choice := range choices {
		rows[i] = tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(choice))
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	msg.ReplyMarkup = keyboard
	return s.send(ctx, msg)
}

// sendFinal sends text and drops any reply keyboard still showing.
func (s *sender) sendFinal(ctx context.Context, conversationID int64, text string) error {
	msg := tgbotapi.NewMessage(conversationID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return s.send(ctx, msg)
}

func (s *sender) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("bot: failed to send message: %w", err)
	}
	return nil
}
