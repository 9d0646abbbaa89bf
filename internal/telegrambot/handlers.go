package telegrambot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reviewcheckk/listing-bot/internal/core/listing"
	"github.com/reviewcheckk/listing-bot/internal/platform/observability"
)

const noTitleReply = "No title provided"

// handleMessage processes one inbound message end to end. A panic
// anywhere below is contained here so the update loop survives a
// malformed message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	logger := b.logger.With().
		Str("trace_id", uuid.NewString()).
		Int64("chat_id", msg.Chat.ID).
		Logger()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("message handling panicked")
			b.reply(&logger, msg, listing.FailureReply)
		}
	}()

	text := extractText(msg)
	if text == "" {
		if len(msg.Photo) > 0 {
			observability.MessagesHandled.WithLabelValues("photo_only").Inc()
			b.reply(&logger, msg, noTitleReply)
		}

		return
	}

	observability.MessagesHandled.WithLabelValues("text").Inc()

	for _, replyText := range b.pipeline.Process(ctx, text) {
		b.reply(&logger, msg, replyText)
	}
}

// extractText returns the message text, falling back to the caption for
// media messages.
func extractText(msg *tgbotapi.Message) string {
	if msg.Text != "" {
		return msg.Text
	}

	return msg.Caption
}

func (b *Bot) reply(logger *zerolog.Logger, msg *tgbotapi.Message, text string) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyToMessageID = msg.MessageID

	if _, err := b.api.Send(reply); err != nil {
		logger.Error().Err(err).Msg("failed to send reply")
		observability.RepliesSent.WithLabelValues("error").Inc()

		return
	}

	observability.RepliesSent.WithLabelValues("ok").Inc()
}
