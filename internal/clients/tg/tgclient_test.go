package tg

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"max.ks1230/personal-accountant/internal/model/messages"
)

func Test_ToMessage(t *testing.T) {
	m := &tgbotapi.Message{
		Text: "/balance",
		Chat: &tgbotapi.Chat{ID: -42},
		From: &tgbotapi.User{ID: 7, UserName: "alice"},
	}

	assert.Equal(t, messages.Message{Text: "/balance", ChatID: -42, Username: "alice"}, toMessage(m))
}

func Test_ToMessage_WithoutSender(t *testing.T) {
	m := &tgbotapi.Message{Text: "hi", Chat: &tgbotapi.Chat{ID: 3}}

	assert.Equal(t, messages.Message{Text: "hi", ChatID: 3}, toMessage(m))
}
