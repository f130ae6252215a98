package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"futurepath-backend/services"
)

// Системная инструкция AI-консультанта, всегда идет первым сообщением
const CareerAdvisorPrompt = `You are an AI Career Advisor for FuturePathAI, specifically designed to help students from rural and low-income backgrounds discover career opportunities and scholarships. Your role is to:

1. Ask about their interests, skills, and background
2. Suggest relevant career paths (like ML Engineer, Data Scientist, Software Developer, Research Scientist, etc.)
3. Recommend specific scholarships that match their profile
4. Provide learning resources and next steps
5. Be encouraging and supportive

Focus on careers in technology, research, and fields with good scholarship opportunities. Always be specific with your recommendations and include actionable advice.`

type converseRequest struct {
	Messages []services.ChatCompletionMessage `json:"messages"`
	Stream   bool                             `json:"stream"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Converse пересылает переписку во внешний completion-сервис.
// Ничего не сохраняет: ни сообщений, ни идентификатора разговора.
func Converse(w http.ResponseWriter, r *http.Request, client *services.ChatClient) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req converseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	messages := make([]services.ChatCompletionMessage, 0, len(req.Messages)+1)
	messages = append(messages, services.ChatCompletionMessage{
		Role:    "system",
		Content: CareerAdvisorPrompt,
	})
	messages = append(messages, req.Messages...)

	if !req.Stream {
		content, err := client.Complete(r.Context(), messages)
		if err != nil {
			log.Printf("Chat completion error: %v", err)
			writeError(w, http.StatusBadGateway, "Failed to get AI response")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": services.ChatCompletionMessage{Role: "assistant", Content: content}},
			},
		})
		return
	}

	stream, err := client.Stream(r.Context(), messages)
	if err != nil {
		log.Printf("Chat stream error: %v", err)
		writeError(w, http.StatusBadGateway, "Failed to get AI response")
		return
	}
	defer stream.Close()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		token, err := stream.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				log.Printf("Chat stream interrupted: %v", err)
			}
			break
		}
		payload, _ := json.Marshal(map[string]string{"content": token})
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
