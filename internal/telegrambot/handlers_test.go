package telegrambot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		msg  *tgbotapi.Message
		want string
	}{
		{"plain text", &tgbotapi.Message{Text: "deal here"}, "deal here"},
		{"caption fallback", &tgbotapi.Message{Caption: "photo caption"}, "photo caption"},
		{"text wins over caption", &tgbotapi.Message{Text: "text", Caption: "caption"}, "text"},
		{"neither", &tgbotapi.Message{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(tt.msg); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
