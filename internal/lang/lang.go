package lang

import (
	"fmt"
	"log"

	tcbconfig "github.com/covergram/telegram-cover-bot/internal/config"
)

var lang string

func SetupLang(config *tcbconfig.Config) {
	lang = config.Lang
}

func GetMessage(id MessageID, args ...interface{}) string {
	if m, ok := messages[id]; ok {
		if msg, ok := m[lang]; ok {
			return fmt.Sprintf(msg, args...)
		}
		if msg, ok := m["en"]; ok {
			return fmt.Sprintf(msg, args...)
		}
	}
	log.Printf("Message not found for ID: %s", id)
	return "Message not found"
}
