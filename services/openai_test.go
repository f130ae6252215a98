package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteReturnsContent(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "answer"}},
			},
		})
	}))
	defer upstream.Close()

	client := NewChatClient(upstream.URL, "key", "gpt-4")
	content, err := client.Complete(context.Background(), []ChatCompletionMessage{{Role: "user", Content: "q"}})
	assert.NoError(t, err)
	assert.Equal(t, "answer", content)
}

func TestCompleteEmptyChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer upstream.Close()

	client := NewChatClient(upstream.URL, "key", "gpt-4")
	_, err := client.Complete(context.Background(), nil)
	assert.Error(t, err)
}

func TestStreamYieldsTokensThenEOF(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"one\"}}]}\n\n")
		// пустая дельта пропускается
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"two\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer upstream.Close()

	client := NewChatClient(upstream.URL, "key", "gpt-4")
	stream, err := client.Stream(context.Background(), []ChatCompletionMessage{{Role: "user", Content: "q"}})
	assert.NoError(t, err)
	defer stream.Close()

	var tokens []string
	for {
		token, err := stream.Recv()
		if err == io.EOF {
			break
		}
		assert.NoError(t, err)
		tokens = append(tokens, token)
	}
	assert.Equal(t, []string{"one", "two"}, tokens)
}

func TestStreamUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	client := NewChatClient(upstream.URL, "key", "gpt-4")
	_, err := client.Stream(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestStreamHandlesLongChunkLines(t *testing.T) {
	long := strings.Repeat("a", 100*1024)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunk, err := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"delta": map[string]string{"content": long}},
			},
		})
		assert.NoError(t, err)
		fmt.Fprintf(w, "data: %s\n\n", chunk)
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer upstream.Close()

	client := NewChatClient(upstream.URL, "key", "gpt-4")
	stream, err := client.Stream(context.Background(), []ChatCompletionMessage{{Role: "user", Content: "q"}})
	assert.NoError(t, err)
	defer stream.Close()

	token, err := stream.Recv()
	assert.NoError(t, err)
	assert.Equal(t, long, token)

	_, err = stream.Recv()
	assert.Equal(t, io.EOF, err)
}
