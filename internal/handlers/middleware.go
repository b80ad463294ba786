package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func LoggingMiddleware(update *tgbotapi.Update) {
	if update.Message != nil {
		logrus.WithFields(logrus.Fields{
			"username": update.Message.From.UserName,
			"text":     update.Message.Text,
		}).Info("Received a new message")
	}
}

// Recover converts a handler panic into an error log so a single bad update
// cannot take the process down. Deferred by the update loop around Router.
func Recover() {
	if r := recover(); r != nil {
		logrus.Errorf("Recovered from panic while handling update: %v", r)
	}
}
