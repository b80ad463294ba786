package bot

import (
	"fmt"

	tcbconfig "github.com/covergram/telegram-cover-bot/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Service is the chat-transport surface the handlers depend on.
// testutils.MockBot implements it for tests.
type Service interface {
	SendMessage(chatID int64, text string, keyboard any)
	SendPhoto(chatID int64, photo tgbotapi.RequestFileData, caption string, keyboard any) (int, error)
	SendVideo(chatID int64, video, cover tgbotapi.RequestFileData, caption string) error
	DeleteMessage(chatID int64, messageID int) error
	AnswerCallback(callbackID, text string)
}

type Bot struct {
	Api *tgbotapi.BotAPI
}

func InitBot(config *tcbconfig.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		logrus.WithError(err).Error("Error creating bot")
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{Api: api}, nil
}

func (b *Bot) SendMessage(chatID int64, text string, keyboard any) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := b.Api.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Message (%s) not sent", text)
	}
}

func (b *Bot) SendPhoto(chatID int64, photo tgbotapi.RequestFileData, caption string, keyboard any) (int, error) {
	msg := tgbotapi.NewPhoto(chatID, photo)
	msg.Caption = caption
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sent, err := b.Api.Send(msg)
	if err != nil {
		logrus.WithError(err).Error("Photo not sent")
		return 0, err
	}
	return sent.MessageID, nil
}

// SendVideo re-sends a video with the given cover attached as its thumbnail.
// The cover may be a platform file ID or raw bytes.
func (b *Bot) SendVideo(chatID int64, video, cover tgbotapi.RequestFileData, caption string) error {
	msg := tgbotapi.NewVideo(chatID, video)
	msg.Thumb = cover
	msg.Caption = caption
	if _, err := b.Api.Send(msg); err != nil {
		logrus.WithError(err).Error("Video not sent")
		return err
	}
	return nil
}

func (b *Bot) DeleteMessage(chatID int64, messageID int) error {
	if _, err := b.Api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		logrus.WithError(err).Warnf("Failed to delete message %d", messageID)
		return err
	}
	return nil
}

func (b *Bot) AnswerCallback(callbackID, text string) {
	if _, err := b.Api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		logrus.WithError(err).Warn("Failed to answer callback query")
	}
}
