package handlers

import (
	"strings"

	tcbbot "github.com/covergram/telegram-cover-bot/internal/bot"
	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	"github.com/covergram/telegram-cover-bot/internal/poster"
	"github.com/covergram/telegram-cover-bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Router dispatches one inbound update. Events from users without a session,
// or that do not fit the session's mode, fall through silently: the user must
// /start or pick a mode first.
func Router(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store, posters poster.Service) {
	if update.CallbackQuery != nil {
		HandleCallbackQuery(bot, update, store, posters)
		return
	}

	if update.Message == nil {
		return
	}

	LoggingMiddleware(update)

	if update.Message.IsCommand() {
		command := strings.ToLower(update.Message.Command())
		switch command {
		case "start":
			StartHandler(bot, update, store)
		default:
			logrus.Warnf("Unknown command: %s", command)
			bot.SendMessage(update.Message.Chat.ID, tcblang.GetMessage(tcblang.UnknownCommandMsgID), nil)
		}
		return
	}

	if mode, ok := modeFromText(update.Message.Text); ok {
		ModeSelectionHandler(bot, update, store, mode)
		return
	}

	if len(update.Message.Photo) > 0 {
		PhotoHandler(bot, update, store)
		return
	}

	if update.Message.Video != nil {
		VideoHandler(bot, update, store, posters)
		return
	}
}

func modeFromText(text string) (session.Mode, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "manual"):
		return session.ModeManual, true
	case strings.Contains(lower, "auto"):
		return session.ModeAuto, true
	default:
		return session.ModeUnset, false
	}
}

// VideoHandler routes a video to the manual or auto workflow by session mode.
func VideoHandler(bot tcbbot.Service, update *tgbotapi.Update, store *session.Store, posters poster.Service) {
	sess, ok := store.Get(update.Message.From.ID)
	if !ok {
		return
	}

	switch sess.Mode {
	case session.ModeManual:
		ManualVideoHandler(bot, update, store)
	case session.ModeAuto:
		AutoVideoHandler(bot, update, store, posters)
	}
}
