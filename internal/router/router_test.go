package router_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindbet-bot/internal/router"
	"mindbet-bot/pkg/llmprovider"
	"mindbet-bot/pkg/log"
)

type stubGenerator struct {
	content string
	err     error
	delay   time.Duration
	lastReq *llmprovider.Request
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.lastReq = req
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Content: s.content, ProviderName: "stub"}, nil
}

func TestClassify_SendsPromptAndParameters(t *testing.T) {
	gen := &stubGenerator{content: `{"has_intent": true, "command": "login", "args": [], "confidence": 0.95, "reply": null}`}
	c := router.New(gen, log.NewNop(), router.Config{})

	r, err := c.Classify(context.Background(), "帮我连上钱包吧")
	require.NoError(t, err)
	assert.Equal(t, "login", r.CommandName())
	assert.Equal(t, 0.95, r.Confidence)

	require.NotNil(t, gen.lastReq)
	assert.Equal(t, router.PromptIntentSystem, gen.lastReq.SystemInstruction)
	assert.Equal(t, 0.3, gen.lastReq.Temperature)
	assert.Equal(t, 500, gen.lastReq.MaxTokens)
	require.Len(t, gen.lastReq.Messages, 1)
	assert.Equal(t, llmprovider.RoleUser, gen.lastReq.Messages[0].Role)
	assert.Equal(t, "帮我连上钱包吧", gen.lastReq.Messages[0].Content)
}

func TestClassify_ReturnsRecordVerbatim(t *testing.T) {
	gen := &stubGenerator{content: "```json\n{\"has_intent\": false, \"command\": null, \"args\": [], \"confidence\": 0.9, \"reply\": null}\n```"}
	c := router.New(gen, log.NewNop(), router.Config{})

	r, err := c.Classify(context.Background(), "比特币会涨到10万吗")
	require.NoError(t, err)
	assert.False(t, r.HasIntent)
	assert.Nil(t, r.Command)
	assert.Equal(t, []string{}, r.Args)
	assert.Equal(t, 0.9, r.Confidence)
	assert.Nil(t, r.Reply)
}

func TestClassify_MalformedOutputFallsBack(t *testing.T) {
	for _, content := range []string{
		`{"has_intent": true, "command": "log`,
		`{"confidence": "high"}`,
		`{"has_intent": true, "command": "markets", "confidence": 42}`,
		"",
	} {
		gen := &stubGenerator{content: content}
		c := router.New(gen, log.NewNop(), router.Config{})

		r, err := c.Classify(context.Background(), "随便聊聊")
		require.NoError(t, err, content)
		assert.Equal(t, router.FallbackRecord(), r, content)
	}
}

func TestClassify_TransportErrorIsUnavailable(t *testing.T) {
	cause := errors.New("502 bad gateway")
	c := router.New(&stubGenerator{err: cause}, log.NewNop(), router.Config{})

	_, err := c.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, router.ErrClassifierUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestClassify_Timeout(t *testing.T) {
	gen := &stubGenerator{delay: time.Second, content: `{}`}
	c := router.New(gen, log.NewNop(), router.Config{Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := c.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, router.ErrClassifierUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestClassify_CustomConfig(t *testing.T) {
	gen := &stubGenerator{content: `{}`}
	c := router.New(gen, log.NewNop(), router.Config{Temperature: 0.1, MaxTokens: 64})

	_, err := c.Classify(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 0.1, gen.lastReq.Temperature)
	assert.Equal(t, 64, gen.lastReq.MaxTokens)
}
