package ui

import (
	"fmt"

	tcblang "github.com/covergram/telegram-cover-bot/internal/lang"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback actions carried in inline-button payloads as "<action>:<ownerID>".
// ActionNoop (the index indicator) carries no owner and is answered silently.
const (
	ActionPrev  = "prev"
	ActionNext  = "next"
	ActionApply = "apply"
	ActionNoop  = "noop"
)

// GetModeKeyboard is the reply keyboard offered on /start.
func GetModeKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(tcblang.GetMessage(tcblang.ManualModeLabelMsgID)),
			tgbotapi.NewKeyboardButton(tcblang.GetMessage(tcblang.AutoModeLabelMsgID)),
		),
	)
}

// GetSelectionKeyboard builds the poster picker controls for the candidate at
// index out of total. Prev appears only when there is a previous candidate,
// Next only when there is a following one; the index indicator and the apply
// row are always present.
func GetSelectionKeyboard(ownerID int64, index, total int) tgbotapi.InlineKeyboardMarkup {
	var nav []tgbotapi.InlineKeyboardButton

	if index > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			tcblang.GetMessage(tcblang.PrevButtonMsgID),
			CallbackData(ActionPrev, ownerID),
		))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d/%d", index+1, total),
		ActionNoop,
	))
	if index < total-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			tcblang.GetMessage(tcblang.NextButtonMsgID),
			CallbackData(ActionNext, ownerID),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		nav,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				tcblang.GetMessage(tcblang.ApplyButtonMsgID),
				CallbackData(ActionApply, ownerID),
			),
		),
	)
}

// CallbackData encodes an action and the owning user into a button payload.
func CallbackData(action string, ownerID int64) string {
	return fmt.Sprintf("%s:%d", action, ownerID)
}
