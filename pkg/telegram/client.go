package telegram

import (
	"fmt"

	"golang-stock-dashboard/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers pre-formatted Markdown messages to a chat.
type Notifier interface {
	SendMessage(text string) error
}

type botNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient authenticates the bot and returns a Notifier bound to chatID.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is required")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate telegram bot: %w", err)
	}
	return &botNotifier{bot: bot, chatID: chatID}, nil
}

func (n *botNotifier) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message to %d: %w", n.chatID, err)
	}
	return nil
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a Notifier that writes messages to the log.
// Used when no bot token is configured.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) SendMessage(text string) error {
	n.logger.Info("Telegram not configured, message logged", logger.StringField("text", text))
	return nil
}
