package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	"github.com/covergram/telegram-cover-bot/internal/handlers/ui"
	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/poster"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// HandleCallbackQuery processes a poster-picker button press. The payload
// encodes the owning user; presses by anyone else are acknowledged with a
// toast and change nothing, since inline buttons are visible to every chat
// member.
func HandleCallbackQuery(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store, posters poster.Service) {
	cb := update.CallbackQuery

	if cb.Data == ui.ActionNoop {
		bot.AnswerCallback(cb.ID, "")
		return
	}

	action, ownerID, err := parseCallbackData(cb.Data)
	if err != nil {
		logrus.Warnf("Unknown callback data: %s", cb.Data)
		bot.AnswerCallback(cb.ID, "")
		return
	}

	if cb.From.ID != ownerID {
		bot.AnswerCallback(cb.ID, tcblang.GetMessage(tcblang.NotYourButtonMsgID))
		return
	}

	bot.AnswerCallback(cb.ID, "")

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	switch action {
	case ui.ActionPrev:
		store.Mutate(ownerID, func(s *session.Session) {
			if len(s.Posters) == 0 {
				return
			}
			if s.Index > 0 {
				s.Index--
			}
			renderSelection(bot, chatID, s)
		})
	case ui.ActionNext:
		store.Mutate(ownerID, func(s *session.Session) {
			if len(s.Posters) == 0 {
				return
			}
			if s.Index < len(s.Posters)-1 {
				s.Index++
			}
			renderSelection(bot, chatID, s)
		})
	case ui.ActionApply:
		store.Mutate(ownerID, func(s *session.Session) {
			applySelection(bot, chatID, s, posters)
		})
	default:
		logrus.Warnf("Unknown callback action: %s", action)
	}
}

// applySelection downloads the chosen poster and re-sends every queued video
// with it as cover. A failed poster download leaves candidates and queue
// intact so the user can retry; a failed video send is logged, reported once
// after the loop, and does not stop the remaining sends. Runs inside the
// session's Mutate scope, so a second apply press waits for this one and then
// finds the queue empty.
func applySelection(bot tcbbot.Service, chatID int64, s *session.Session, posters poster.Service) {
	if len(s.Posters) == 0 || len(s.PendingVideos) == 0 {
		bot.SendMessage(chatID, tcblang.GetMessage(tcblang.NothingPendingMsgID), nil)
		return
	}

	image, err := posters.FetchImage(context.Background(), s.Posters[s.Index])
	if err != nil {
		logrus.WithError(err).Error("Failed to download the selected poster")
		bot.SendMessage(chatID, tcblang.GetMessage(tcblang.ApplyFetchFailedMsgID), nil)
		return
	}

	cover := tgbotapi.FileBytes{Name: "cover.jpg", Bytes: image}
	failures := 0
	for _, videoID := range s.PendingVideos {
		err := bot.SendVideo(chatID, tgbotapi.FileID(videoID), cover, tcblang.GetMessage(tcblang.PosterAppliedMsgID))
		if err != nil {
			logrus.WithError(err).Warnf("Failed to send video %s with new cover", videoID)
			failures++
		}
	}

	applied := len(s.PendingVideos)
	s.PendingVideos = nil

	if s.SelectionMessageID != 0 {
		_ = bot.DeleteMessage(chatID, s.SelectionMessageID)
		s.SelectionMessageID = 0
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  s.UserID,
		"applied":  applied,
		"failures": failures,
	}).Info("Poster applied to queued videos")

	if failures > 0 {
		bot.SendMessage(chatID, tcblang.GetMessage(tcblang.ApplySendFailedMsgID), nil)
	}
}

func parseCallbackData(data string) (action string, ownerID int64, err error) {
	action, rawID, found := strings.Cut(data, ":")
	if !found {
		return "", 0, fmt.Errorf("malformed callback data: %q", data)
	}
	ownerID, err = strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed callback owner in %q: %w", data, err)
	}
	return action, ownerID, nil
}
