package handlers

import (
	"context"

	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	"github.com/covergram/telegram-cover-bot/internal/caption"
	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/poster"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// AutoVideoHandler runs the auto workflow for one incoming video: extract a
// title from the caption, search posters, queue the video and present the
// first candidate. A video whose caption yields no title, or whose search
// yields no posters, is reported and NOT queued — the user resends it.
func AutoVideoHandler(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store, posters poster.Service) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	videoID := update.Message.Video.FileID

	title, year := caption.Extract(update.Message.Caption)
	if title == "" {
		bot.SendMessage(chatID, tcblang.GetMessage(tcblang.NoTitleMsgID), nil)
		return
	}

	candidates := posters.Search(context.Background(), title, year)
	if len(candidates) == 0 {
		bot.SendMessage(chatID, tcblang.GetMessage(tcblang.NoPostersMsgID), nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   title,
		"year":    year,
		"posters": len(candidates),
	}).Info("Poster candidates ready")

	store.Mutate(userID, func(s *session.Session) {
		// The mode may have changed while the search was in flight.
		if s.Mode != session.ModeAuto {
			return
		}
		s.Posters = candidates
		s.Index = 0
		s.PendingVideos = append(s.PendingVideos, videoID)
		renderSelection(bot, chatID, s)
	})
}
