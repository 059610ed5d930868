package claude_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindbet-bot/pkg/claude"
)

type mockMessages struct {
	response *anthropic.Message
	err      error
	calls    []anthropic.MessageNewParams
}

func (m *mockMessages) New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error) {
	m.calls = append(m.calls, params)
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func TestSend(t *testing.T) {
	mock := &mockMessages{
		response: &anthropic.Message{
			Content: []anthropic.ContentBlockUnion{
				{Type: "text", Text: `{"has_intent": true, `},
				{Type: "text", Text: `"command": "login"}`},
			},
			Usage: anthropic.Usage{InputTokens: 30, OutputTokens: 9},
		},
	}
	client := claude.NewWithMessages("", mock)
	assert.Equal(t, claude.DefaultModel, client.Model())

	resp, err := client.Send(context.Background(), claude.Request{
		System:      "classify",
		Turns:       []claude.Turn{{Text: "我要登录"}},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"has_intent": true, "command": "login"}`, resp.Text)
	assert.Equal(t, 30, resp.InputTokens)
	assert.Equal(t, 9, resp.OutputTokens)

	require.Len(t, mock.calls, 1)
	params := mock.calls[0]
	assert.Equal(t, int64(500), params.MaxTokens)
	require.Len(t, params.System, 1)
	assert.Equal(t, "classify", params.System[0].Text)
	assert.Len(t, params.Messages, 1)
}

func TestSend_Errors(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		client := claude.NewWithMessages("m", &mockMessages{err: errors.New("connection reset")})
		_, err := client.Send(context.Background(), claude.Request{Turns: []claude.Turn{{Text: "hi"}}})
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("no text blocks", func(t *testing.T) {
		client := claude.NewWithMessages("m", &mockMessages{response: &anthropic.Message{}})
		_, err := client.Send(context.Background(), claude.Request{Turns: []claude.Turn{{Text: "hi"}}})
		assert.ErrorIs(t, err, claude.ErrEmptyResponse)
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := claude.New(claude.Config{})
	assert.Error(t, err)

	client, err := claude.New(claude.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, claude.DefaultModel, client.Model())
}
