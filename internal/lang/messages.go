package lang

type MessageID string

const (
	StartMsgID            MessageID = "start"
	ManualModeOnMsgID     MessageID = "manual_mode_on"
	AutoModeOnMsgID       MessageID = "auto_mode_on"
	ThumbnailSavedMsgID   MessageID = "thumbnail_saved"
	NoThumbnailMsgID      MessageID = "no_thumbnail"
	NoTitleMsgID          MessageID = "no_title"
	NoPostersMsgID        MessageID = "no_posters"
	ChoosePosterMsgID     MessageID = "choose_poster"
	PosterAppliedMsgID    MessageID = "poster_applied"
	ApplyFetchFailedMsgID MessageID = "apply_fetch_failed"
	ApplySendFailedMsgID  MessageID = "apply_send_failed"
	NothingPendingMsgID   MessageID = "nothing_pending"
	VideoSendFailedMsgID  MessageID = "video_send_failed"
	NotYourButtonMsgID    MessageID = "not_your_button"
	UnknownCommandMsgID   MessageID = "unknown_command"
	ManualModeLabelMsgID  MessageID = "manual_mode_label"
	AutoModeLabelMsgID    MessageID = "auto_mode_label"
	PrevButtonMsgID       MessageID = "prev_button"
	NextButtonMsgID       MessageID = "next_button"
	ApplyButtonMsgID      MessageID = "apply_button"
)

var messages = map[MessageID]map[string]string{
	StartMsgID: {
		"en": "🤖 Thumbnail Cover Bot\n\nChoose Mode:\n• Manual – thumbnail → video\n• Auto – video → poster auto",
	},
	ManualModeOnMsgID: {
		"en": "✅ Manual Mode ON\nSend thumbnail first.",
	},
	AutoModeOnMsgID: {
		"en": "✅ Auto Mode ON\nSend video directly.",
	},
	ThumbnailSavedMsgID: {
		"en": "✅ Thumbnail saved. Now send video.",
	},
	NoThumbnailMsgID: {
		"en": "❌ Send thumbnail first.",
	},
	NoTitleMsgID: {
		"en": "❌ Could not find a title in the caption.",
	},
	NoPostersMsgID: {
		"en": "❌ No posters found. Try resending with a cleaner caption.",
	},
	ChoosePosterMsgID: {
		"en": "Choose poster",
	},
	PosterAppliedMsgID: {
		"en": "🎬 Auto Poster Applied",
	},
	ApplyFetchFailedMsgID: {
		"en": "❌ Could not download the selected poster. Press Apply to retry.",
	},
	ApplySendFailedMsgID: {
		"en": "⚠️ Some videos could not be sent.",
	},
	NothingPendingMsgID: {
		"en": "Nothing to apply. Send a video first.",
	},
	VideoSendFailedMsgID: {
		"en": "❌ Could not send the video. Try again.",
	},
	NotYourButtonMsgID: {
		"en": "Not your button.",
	},
	UnknownCommandMsgID: {
		"en": "Unknown command.",
	},
	ManualModeLabelMsgID: {
		"en": "Manual Mode",
	},
	AutoModeLabelMsgID: {
		"en": "Auto Mode",
	},
	PrevButtonMsgID: {
		"en": "⬅ Prev",
	},
	NextButtonMsgID: {
		"en": "Next ➡",
	},
	ApplyButtonMsgID: {
		"en": "✅ Apply to All",
	},
}
