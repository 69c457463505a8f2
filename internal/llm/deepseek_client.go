// ABOUTME: DeepSeek oracle client for intent extraction and address validation
// ABOUTME: OpenAI-compatible chat completions; all failures become zero-confidence data
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/models"
	"github.com/Z0909/heiha/internal/util"
)

const (
	// DefaultChatModel is the default DeepSeek chat model
	DefaultChatModel = "deepseek-chat"
	// DefaultBaseURL is the DeepSeek OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.deepseek.com"
)

const intentPromptTemplate = `请分析以下用户输入的导航请求，提取关键信息并返回JSON格式结果：

用户输入：%s

请提取以下信息：
1. 起点位置（origin）
2. 终点位置（destination）
3. 推荐使用的地图服务（baidu_map 或 amap）
4. 导航模式（默认使用公共交通）

返回JSON格式：
{
    "origin": "起点地址",
    "destination": "终点地址",
    "map_service": "baidu_map 或 amap",
    "transport_mode": "transit",
    "confidence": 0.95
}

如果无法确定起点或终点，请返回null值。`

const validatePromptTemplate = `请验证以下地址是否是一个有效的地理位置：
地址：%s

返回JSON格式：
{
    "is_valid": true/false,
    "standardized_address": "标准化后的地址",
    "confidence": 0.95
}`

// ClientConfig holds configuration for the DeepSeek client
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		ChatModel:  DefaultChatModel,
		Timeout:    30 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Second * 2,
	}
}

// Client wraps the DeepSeek chat completions API with retry logic.
// It is the oracle behind intent analysis and address validation.
type Client struct {
	client     *openai.Client
	chatModel  string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewClient creates a new DeepSeek client with the given API key using
// default configuration.
func NewClient(apiKey string, logger *zap.Logger) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey), logger)
}

// NewClientWithConfig creates a new DeepSeek client with custom configuration
func NewClientWithConfig(config *ClientConfig, logger *zap.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("DeepSeek API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	apiConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		apiConfig.BaseURL = config.BaseURL
	}

	return &Client{
		client:     openai.NewClientWithConfig(apiConfig),
		chatModel:  config.ChatModel,
		timeout:    config.Timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		logger:     logger,
	}, nil
}

// AnalyzeIntent asks the oracle for a structured reading of the request.
// It never fails outward: every internal failure is absorbed into an
// Intent with zero confidence and the diagnostic in Error.
func (c *Client) AnalyzeIntent(ctx context.Context, userInput string) *models.Intent {
	prompt := fmt.Sprintf(intentPromptTemplate, userInput)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		c.logger.Warn("intent analysis call failed", zap.Error(err))
		return fallbackIntent(err)
	}

	span, err := extractJSONSpan(content)
	if err != nil {
		c.logger.Warn("intent response had no JSON span", zap.Error(err))
		return fallbackIntent(err)
	}

	var intent models.Intent
	if err := json.Unmarshal([]byte(span), &intent); err != nil {
		c.logger.Warn("intent JSON parse failed", zap.Error(err))
		return fallbackIntent(err)
	}

	// Missing optional fields take the original's defaults.
	if intent.TransportMode == "" {
		intent.TransportMode = string(models.DefaultMode)
	}
	if intent.Confidence == 0 {
		intent.Confidence = 0.8
	}
	return &intent
}

// ValidateAddress asks the oracle whether an address resolves to a real
// place. Same fail-soft contract as AnalyzeIntent: on any failure the
// result is invalid with the original text echoed back.
func (c *Client) ValidateAddress(ctx context.Context, address string) *models.AddressValidation {
	prompt := fmt.Sprintf(validatePromptTemplate, address)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		c.logger.Warn("address validation call failed", zap.String("address", address), zap.Error(err))
		return fallbackValidation(address, err)
	}

	span, err := extractJSONSpan(content)
	if err != nil {
		return fallbackValidation(address, err)
	}

	var validation models.AddressValidation
	if err := json.Unmarshal([]byte(span), &validation); err != nil {
		return fallbackValidation(address, err)
	}

	if validation.StandardizedAddress == "" {
		validation.StandardizedAddress = address
	}
	return &validation
}

// complete performs one chat completion with retries and bounded timeouts.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.1,
			MaxTokens:   1000,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			if ctx.Err() != nil {
				return "", lastErr
			}
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("chat completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// extractJSONSpan pulls the JSON object out of a response that may wrap
// it in prose: the span runs from the first line starting with "{"
// through the first subsequent line ending with "}".
func extractJSONSpan(text string) (string, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	start := -1
	end := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start == -1 && strings.HasPrefix(trimmed, "{") {
			start = i
		}
		if start != -1 && strings.HasSuffix(trimmed, "}") {
			end = i
			break
		}
	}

	if start == -1 || end == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return strings.Join(lines[start:end+1], "\n"), nil
}

func fallbackIntent(err error) *models.Intent {
	return &models.Intent{
		MapService:    string(models.DefaultProvider),
		TransportMode: string(models.DefaultMode),
		Confidence:    0.0,
		Error:         err.Error(),
	}
}

func fallbackValidation(address string, err error) *models.AddressValidation {
	return &models.AddressValidation{
		IsValid:             false,
		StandardizedAddress: address,
		Confidence:          0.0,
		Error:               err.Error(),
	}
}
