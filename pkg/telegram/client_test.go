package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent    []tgbotapi.MessageConfig
	failFor func(tgbotapi.MessageConfig) error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg := c.(tgbotapi.MessageConfig)
	if f.failFor != nil {
		if err := f.failFor(msg); err != nil {
			return tgbotapi.Message{}, err
		}
	}
	f.sent = append(f.sent, msg)
	return tgbotapi.Message{}, nil
}

func TestClient_SendMessage(t *testing.T) {
	bot := &fakeSender{}
	c := &client{bot: bot, chatID: 42}

	require.NoError(t, c.SendMessage(context.Background(), "🔥 *Urgent signals*"))
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.True(t, bot.sent[0].DisableWebPagePreview)
}

func TestClient_SendMessage_FallsBackToPlainText(t *testing.T) {
	bot := &fakeSender{failFor: func(m tgbotapi.MessageConfig) error {
		if m.ParseMode != "" {
			return &tgbotapi.Error{Code: 400, Message: "Bad Request: can't parse entities: Can't find end of the entity"}
		}
		return nil
	}}
	c := &client{bot: bot, chatID: 1}

	require.NoError(t, c.SendMessage(context.Background(), "reason: above_ma50"))
	require.Len(t, bot.sent, 1)
	assert.Empty(t, bot.sent[0].ParseMode)
	assert.Equal(t, "reason: above_ma50", bot.sent[0].Text)
}

func TestClient_SendMessage_Errors(t *testing.T) {
	bot := &fakeSender{failFor: func(tgbotapi.MessageConfig) error {
		return &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}
	}}
	c := &client{bot: bot, chatID: 1}

	err := c.SendMessage(context.Background(), "hi")
	require.Error(t, err)
	var apiErr *tgbotapi.Error
	assert.True(t, errors.As(err, &apiErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := &fakeSender{}
	err = (&client{bot: ok, chatID: 1}).SendMessage(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ok.sent)
}

func TestClient_SendMessage_SplitsLongText(t *testing.T) {
	bot := &fakeSender{}
	c := &client{bot: bot, chatID: 1}

	line := strings.Repeat("x", 99) + "\n"
	text := strings.Repeat(line, 100)
	require.NoError(t, c.SendMessage(context.Background(), text))

	require.Len(t, bot.sent, 3)
	var joined strings.Builder
	for _, m := range bot.sent {
		assert.LessOrEqual(t, len([]rune(m.Text)), messageLimit)
		assert.True(t, strings.HasSuffix(m.Text, "\n"))
		joined.WriteString(m.Text)
	}
	assert.Equal(t, text, joined.String())
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 10))

	parts := splitMessage(strings.Repeat("é", 25), 10)
	assert.Equal(t, []string{strings.Repeat("é", 10), strings.Repeat("é", 10), strings.Repeat("é", 5)}, parts)
}
