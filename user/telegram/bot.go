// Package telegram provides an api.Reporter implementation on top of a telegram bot.
// Pending operations show up as messages and are deleted again once dismissed.
package telegram

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/internal/api"
)

const (
	telegramBotToken = "TELEGRAM_BOT_TOKEN"
	telegramChatID   = "TELEGRAM_CHAT_ID"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	DeleteMessage(config tgbotapi.DeleteMessageConfig) (tgbotapi.APIResponse, error)
}

// Bot defines the telegram api.Reporter implementation.
type Bot struct {
	bot    botAPI
	chatID int64
	lock   *sync.Mutex
}

// NewBot creates a new telegram bot from the environment.
func NewBot() (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(os.Getenv(telegramBotToken))
	if err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	chatIDProperty := os.Getenv(telegramChatID)
	chatID, err := strconv.ParseInt(chatIDProperty, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("error parsing chat ID: %w", err)
	}
	bot.Buffer = 0
	return &Bot{
		bot:    bot,
		chatID: chatID,
		lock:   new(sync.Mutex),
	}, nil
}

func (b *Bot) Notify(message *api.Message) api.Key {
	b.lock.Lock()
	defer b.lock.Unlock()

	text := message.Text
	if message.Level == api.Error {
		text = fmt.Sprintf("❗ %s", text)
	}
	sent, err := b.bot.Send(tgbotapi.NewMessage(b.chatID, text))
	if err != nil {
		log.Error().Err(err).Str("text", text).Msg("could not send message")
		return api.NoKey
	}
	return api.Key(strconv.Itoa(sent.MessageID))
}

func (b *Bot) Dismiss(key api.Key) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if key == api.NoKey {
		return
	}
	messageID, err := strconv.Atoi(string(key))
	if err != nil {
		log.Warn().Str("key", string(key)).Msg("invalid notification key")
		return
	}
	if _, err := b.bot.DeleteMessage(tgbotapi.NewDeleteMessage(b.chatID, messageID)); err != nil {
		log.Warn().Err(err).Int("message", messageID).Msg("could not delete message")
	}
}

func (b *Bot) SaveTransactionHash(kind string, hash string) {
	b.send(fmt.Sprintf("%s transaction: %s", kind, hash))
}

func (b *Bot) SaveAddress(kind string, address string) {
	b.send(fmt.Sprintf("%s address: %s", kind, address))
}

func (b *Bot) send(text string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if _, err := b.bot.Send(tgbotapi.NewMessage(b.chatID, text)); err != nil {
		log.Error().Err(err).Str("text", text).Msg("could not send message")
	}
}
