package testutils

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MockMessage captures a single text message sent by MockBot.
type MockMessage struct {
	ChatID   int64
	Text     string
	Keyboard any
}

// MockPhoto captures a single photo sent by MockBot.
type MockPhoto struct {
	ChatID   int64
	Photo    tgbotapi.RequestFileData
	Caption  string
	Keyboard any
}

// MockVideo captures a single video sent by MockBot.
type MockVideo struct {
	ChatID  int64
	Video   tgbotapi.RequestFileData
	Cover   tgbotapi.RequestFileData
	Caption string
}

// MockDeletion captures a single message deletion.
type MockDeletion struct {
	ChatID    int64
	MessageID int
}

// MockCallback captures a single callback answer.
type MockCallback struct {
	CallbackID string
	Text       string
}

// MockBot implements bot.Service for testing, recording every outbound call.
type MockBot struct {
	SentMessages      []MockMessage
	SentPhotos        []MockPhoto
	SentVideos        []MockVideo
	DeletedMessages   []MockDeletion
	AnsweredCallbacks []MockCallback

	// SendVideoError, if set, is returned by SendVideo.
	SendVideoError error
	// SendPhotoError, if set, is returned by SendPhoto.
	SendPhotoError error

	nextMessageID int
}

func (m *MockBot) SendMessage(chatID int64, text string, keyboard any) {
	m.SentMessages = append(m.SentMessages, MockMessage{
		ChatID:   chatID,
		Text:     text,
		Keyboard: keyboard,
	})
}

func (m *MockBot) SendPhoto(chatID int64, photo tgbotapi.RequestFileData, caption string, keyboard any) (int, error) {
	if m.SendPhotoError != nil {
		return 0, m.SendPhotoError
	}
	m.SentPhotos = append(m.SentPhotos, MockPhoto{
		ChatID:   chatID,
		Photo:    photo,
		Caption:  caption,
		Keyboard: keyboard,
	})
	m.nextMessageID++
	return m.nextMessageID, nil
}

func (m *MockBot) SendVideo(chatID int64, video, cover tgbotapi.RequestFileData, caption string) error {
	if m.SendVideoError != nil {
		return m.SendVideoError
	}
	m.SentVideos = append(m.SentVideos, MockVideo{
		ChatID:  chatID,
		Video:   video,
		Cover:   cover,
		Caption: caption,
	})
	return nil
}

func (m *MockBot) DeleteMessage(chatID int64, messageID int) error {
	m.DeletedMessages = append(m.DeletedMessages, MockDeletion{
		ChatID:    chatID,
		MessageID: messageID,
	})
	return nil
}

func (m *MockBot) AnswerCallback(callbackID, text string) {
	m.AnsweredCallbacks = append(m.AnsweredCallbacks, MockCallback{
		CallbackID: callbackID,
		Text:       text,
	})
}

// GetLastMessage returns the most recently sent text message, or nil if none.
func (m *MockBot) GetLastMessage() *MockMessage {
	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// GetLastPhoto returns the most recently sent photo, or nil if none.
func (m *MockBot) GetLastPhoto() *MockPhoto {
	if len(m.SentPhotos) == 0 {
		return nil
	}
	return &m.SentPhotos[len(m.SentPhotos)-1]
}

// Clear resets everything the mock has captured.
func (m *MockBot) Clear() {
	m.SentMessages = nil
	m.SentPhotos = nil
	m.SentVideos = nil
	m.DeletedMessages = nil
	m.AnsweredCallbacks = nil
}
