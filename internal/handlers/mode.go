package handlers

import (
	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	"github.com/covergram/telegram-cover-bot/internal/handlers/ui"
	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// StartHandler (re)initializes the user's session and offers the mode keyboard.
func StartHandler(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store) {
	userID := update.Message.From.ID
	store.Create(userID)
	logrus.WithField("user_id", userID).Info("Session initialized")

	bot.SendMessage(update.Message.Chat.ID, tcblang.GetMessage(tcblang.StartMsgID), ui.GetModeKeyboard())
}

// ModeSelectionHandler switches the session into manual or auto mode. Selecting
// a mode always starts a fresh workflow: saved thumbnail, candidates and the
// pending queue are cleared even when the mode is re-selected unchanged.
func ModeSelectionHandler(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store, mode session.Mode) {
	userID := update.Message.From.ID

	if _, ok := store.Get(userID); !ok {
		store.Create(userID)
	}

	store.Mutate(userID, func(s *session.Session) {
		s.Mode = mode
		s.ResetWorkflow()
	})
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"mode":    mode.String(),
	}).Info("Mode selected")

	switch mode {
	case session.ModeManual:
		bot.SendMessage(update.Message.Chat.ID, tcblang.GetMessage(tcblang.ManualModeOnMsgID), nil)
	case session.ModeAuto:
		bot.SendMessage(update.Message.Chat.ID, tcblang.GetMessage(tcblang.AutoModeOnMsgID), nil)
	}
}
