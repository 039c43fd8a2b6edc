package telegram

import (
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/stretchr/testify/assert"

	"github.com/chainlearn/chainlearn/internal/api"
)

type mockBot struct {
	sent    []tgbotapi.Chattable
	deleted []tgbotapi.DeleteMessageConfig
	nextID  int
}

func (m *mockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.sent = append(m.sent, c)
	m.nextID++
	return tgbotapi.Message{MessageID: m.nextID}, nil
}

func (m *mockBot) DeleteMessage(config tgbotapi.DeleteMessageConfig) (tgbotapi.APIResponse, error) {
	m.deleted = append(m.deleted, config)
	return tgbotapi.APIResponse{Ok: true}, nil
}

func newTestBot() (*Bot, *mockBot) {
	mock := &mockBot{}
	return &Bot{
		bot:    mock,
		chatID: 42,
		lock:   new(sync.Mutex),
	}, mock
}

func TestBot_NotifyDismiss(t *testing.T) {
	bot, mock := newTestBot()

	key := bot.Notify(api.NewMessage("deploying model"))
	assert.Equal(t, api.Key("1"), key)
	assert.Len(t, mock.sent, 1)
	message, ok := mock.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.Equal(t, "deploying model", message.Text)
	assert.Equal(t, int64(42), message.ChatID)

	bot.Dismiss(key)
	assert.Len(t, mock.deleted, 1)
	assert.Equal(t, 1, mock.deleted[0].MessageID)
	assert.Equal(t, int64(42), mock.deleted[0].ChatID)
}

func TestBot_NotifyError(t *testing.T) {
	bot, mock := newTestBot()

	bot.Notify(api.NewMessage("boom").WithLevel(api.Error))
	message := mock.sent[0].(tgbotapi.MessageConfig)
	assert.Contains(t, message.Text, "boom")
	assert.NotEqual(t, "boom", message.Text)
}

func TestBot_DismissNoKey(t *testing.T) {
	bot, mock := newTestBot()

	bot.Dismiss(api.NoKey)
	assert.Empty(t, mock.sent)
	assert.Empty(t, mock.deleted)
}

func TestBot_Saves(t *testing.T) {
	bot, mock := newTestBot()

	bot.SaveAddress("model", "0xabc")
	bot.SaveTransactionHash("model", "0xdef")
	assert.Len(t, mock.sent, 2)
	assert.Contains(t, mock.sent[0].(tgbotapi.MessageConfig).Text, "0xabc")
	assert.Contains(t, mock.sent[1].(tgbotapi.MessageConfig).Text, "0xdef")
}
