package handlers

import (
	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	"github.com/covergram/telegram-cover-bot/internal/handlers/ui"
	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// renderSelection replaces the poster picker message with the candidate at the
// session's current index. Must be called inside the session's Mutate scope.
func renderSelection(bot tcbbot.Service, chatID int64, s *session.Session) {
	if len(s.Posters) == 0 {
		return
	}

	if s.SelectionMessageID != 0 {
		_ = bot.DeleteMessage(chatID, s.SelectionMessageID)
		s.SelectionMessageID = 0
	}

	keyboard := ui.GetSelectionKeyboard(s.UserID, s.Index, len(s.Posters))
	messageID, err := bot.SendPhoto(
		chatID,
		tgbotapi.FileURL(s.Posters[s.Index]),
		tcblang.GetMessage(tcblang.ChoosePosterMsgID),
		keyboard,
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to present poster candidate")
		return
	}
	s.SelectionMessageID = messageID
}
