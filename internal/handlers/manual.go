package handlers

import (
	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// PhotoHandler stores the uploaded photo as the manual-mode thumbnail,
// overwriting any previous one. Photos in other modes are a silent no-op.
func PhotoHandler(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store) {
	userID := update.Message.From.ID
	photos := update.Message.Photo
	// Telegram orders photo sizes ascending; keep the largest.
	fileID := photos[len(photos)-1].FileID

	saved := false
	store.Mutate(userID, func(s *session.Session) {
		if s.Mode != session.ModeManual {
			return
		}
		s.Thumbnail = fileID
		saved = true
	})
	if !saved {
		return
	}

	logrus.WithField("user_id", userID).Info("Thumbnail saved")
	bot.SendMessage(update.Message.Chat.ID, tcblang.GetMessage(tcblang.ThumbnailSavedMsgID), nil)
}

// ManualVideoHandler re-sends the video with the saved thumbnail as its cover
// and deletes the user's original message on success.
func ManualVideoHandler(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	videoID := update.Message.Video.FileID
	messageID := update.Message.MessageID
	videoCaption := update.Message.Caption

	store.Mutate(userID, func(s *session.Session) {
		if s.Mode != session.ModeManual {
			return
		}
		if s.Thumbnail == "" {
			bot.SendMessage(chatID, tcblang.GetMessage(tcblang.NoThumbnailMsgID), nil)
			return
		}

		err := bot.SendVideo(chatID, tgbotapi.FileID(videoID), tgbotapi.FileID(s.Thumbnail), videoCaption)
		if err != nil {
			bot.SendMessage(chatID, tcblang.GetMessage(tcblang.VideoSendFailedMsgID), nil)
			return
		}
		_ = bot.DeleteMessage(chatID, messageID)
	})
}
