package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// TelegramSender delivers reminder notifications to a Telegram chat.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *logrus.Logger
}

// NewTelegramSender creates a Telegram-backed Sender. All notifications go to
// the configured chat, which is the household's shared reminder channel.
func NewTelegramSender(token string, chatID int64, logger *logrus.Logger) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Infof("Authorized on account %s", api.Self.UserName)

	return &TelegramSender{api: api, chatID: chatID, logger: logger}, nil
}

// Send posts the notification to the configured chat.
func (t *TelegramSender) Send(userID int64, title, body string) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("*%s*\n%s", title, body))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	t.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"chat_id": t.chatID,
	}).Debug("Notification delivered via Telegram")
	return nil
}
