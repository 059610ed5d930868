package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// blockingProvider waits for the context to end
type blockingProvider struct {
	callCount int
}

func (b *blockingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	b.callCount++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingProvider) Name() string  { return "blocking" }
func (b *blockingProvider) Model() string { return "blocking-model" }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return UserPrompt("system prompt", "Hello", 0.3, 500)
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		response: &Response{
			Content:      "Hello from primary provider",
			ProviderName: "primary",
			ModelName:    "primary-model",
			Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Content != "Hello from primary provider" {
		t.Errorf("Unexpected content: %q", resp.Content)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if primary.lastReq.SystemInstruction != "system prompt" || primary.lastReq.Temperature != 0.3 || primary.lastReq.MaxTokens != 500 {
		t.Errorf("Request not forwarded unchanged: %+v", primary.lastReq)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: &Response{Content: "Hello from secondary provider", ProviderName: "secondary"},
	}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	// Nil usage must not break success logging
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when all providers fail, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %+v", resp)
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}

	var providerErr *ProviderError
	if !errors.As(err, &providerErr) || providerErr.Provider != "secondary" {
		t.Errorf("Expected last provider error from secondary, got: %v", err)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected 2 calls each, got primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: &Response{}}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest()); err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", response: &Response{}}
	manager := NewManager([]Provider{primary}, nil, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected provider not to be called, got: %d", primary.callCount)
	}
}

func TestGenerateContent_StopsRetryingOnDeadline(t *testing.T) {
	blocking := &blockingProvider{}
	manager := NewManager([]Provider{blocking}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   5,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: 50 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got: %v", err)
	}
	if blocking.callCount != 1 {
		t.Errorf("Expected a single attempt, got: %d", blocking.callCount)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Manager kept running for %s after the deadline", elapsed)
	}
}

func TestProviders_ReturnsNamesInOrder(t *testing.T) {
	manager := NewManager([]Provider{
		&mockProvider{name: "hunyuan"},
		&mockProvider{name: "gemini"},
	}, nil, &mockLogger{})

	names := manager.Providers()
	if len(names) != 2 || names[0] != "hunyuan" || names[1] != "gemini" {
		t.Errorf("Unexpected provider names: %v", names)
	}
}
