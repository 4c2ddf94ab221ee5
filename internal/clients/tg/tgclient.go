package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/logger"
	"max.ks1230/personal-accountant/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	defaultTimeout      = 5 * time.Second
	updatesTimeout      = 60
)

type config interface {
	Token() string
	MessageTimeout() time.Duration
}

type Client struct {
	client  *tgbotapi.BotAPI
	timeout time.Duration
}

func New(config config) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(config.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	timeout := config.MessageTimeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{client: client, timeout: timeout}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updatesTimeout

	updates := c.client.GetUpdatesChan(u)
	defer c.client.StopReceivingUpdates()

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	if update.Message == nil {
		return
	}

	msg := toMessage(update.Message)
	logger.Debug("incoming message", zap.Int64("chat", msg.ChatID), zap.String("user", msg.Username))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := msgModel.HandleIncomingMessage(ctx, msg); err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}

func toMessage(m *tgbotapi.Message) messages.Message {
	msg := messages.Message{
		Text:   m.Text,
		ChatID: m.Chat.ID,
	}
	if m.From != nil {
		msg.Username = m.From.UserName
	}
	return msg
}
