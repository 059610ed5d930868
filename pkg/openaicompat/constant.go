package openaicompat

import "time"

// Provider kinds served through the OpenAI chat completions protocol
const (
	KindOpenAI   = "openai"
	KindHunyuan  = "hunyuan"
	KindDeepSeek = "deepseek"
	KindQwen     = "qwen"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

var defaultBaseURLs = map[string]string{
	KindOpenAI:   "https://api.openai.com/v1",
	KindHunyuan:  "https://api.hunyuan.cloud.tencent.com/v1",
	KindDeepSeek: "https://api.deepseek.com/v1",
	KindQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

var defaultModels = map[string]string{
	KindOpenAI:   "gpt-4o-mini",
	KindHunyuan:  "hunyuan-lite",
	KindDeepSeek: "deepseek-chat",
	KindQwen:     "qwen-plus",
}
