package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const DefaultChatEndpoint = "https://api.aimlapi.com/chat/completions"

type ChatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []ChatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream,omitempty"`
}

// Структура сообщения
type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Структура ответа
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Чанк потокового ответа
type ChatCompletionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type ChatClient struct {
	Endpoint   string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewChatClient(endpoint, apiKey, model string) *ChatClient {
	if endpoint == "" {
		endpoint = DefaultChatEndpoint
	}
	return &ChatClient{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{},
	}
}

func (c *ChatClient) send(ctx context.Context, reqBody ChatCompletionRequest) (*http.Response, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return resp, nil
}

// Complete — блокирующий вызов chat completion без потока
func (c *ChatClient) Complete(ctx context.Context, messages []ChatCompletionMessage) (string, error) {
	resp, err := c.send(ctx, ChatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var completionResp ChatCompletionResponse
	if err := json.Unmarshal(body, &completionResp); err != nil {
		return "", fmt.Errorf("failed to decode API response: %w", err)
	}
	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned by the API")
	}
	return completionResp.Choices[0].Message.Content, nil
}

// Stream запускает потоковый вызов и возвращает ленивую последовательность
// токенов. Поток конечен и не перезапускается, вызывающий обязан закрыть его.
func (c *ChatClient) Stream(ctx context.Context, messages []ChatCompletionMessage) (*ChatStream, error) {
	resp, err := c.send(ctx, ChatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(resp.Body)
	// SSE-строка с длинным фрагментом не влезает в стандартные 64КБ
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &ChatStream{
		body:    resp.Body,
		scanner: scanner,
	}, nil
}

type ChatStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

// Recv возвращает следующий текстовый токен, io.EOF по окончании потока
func (s *ChatStream) Recv() (string, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			return "", io.EOF
		}

		var chunk ChatCompletionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return "", fmt.Errorf("failed to decode stream chunk: %w", err)
		}
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			return chunk.Choices[0].Delta.Content, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *ChatStream) Close() error {
	return s.body.Close()
}
