package dashboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"futurepath-backend/controllers/authentication"
	"futurepath-backend/models/dashboard"
)

type addFavoriteRequest struct {
	ScholarshipID       string  `json:"scholarship_id"`
	ScholarshipTitle    string  `json:"scholarship_title"`
	ScholarshipProvider *string `json:"scholarship_provider"`
	ScholarshipCountry  *string `json:"scholarship_country"`
	ScholarshipDeadline *string `json:"scholarship_deadline"`
	ScholarshipAmount   *string `json:"scholarship_amount"`
	ScholarshipLevel    *string `json:"scholarship_level"`
	ScholarshipField    *string `json:"scholarship_field"`
}

// AddFavorite — сохранение стипендии в избранное
func AddFavorite(w http.ResponseWriter, r *http.Request, store dashboard.FavoriteStore) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ScholarshipID == "" || req.ScholarshipTitle == "" {
		writeError(w, http.StatusBadRequest, "Scholarship ID and title are required")
		return
	}

	favoriteID, err := store.Add(claims.UserID, dashboard.FavoriteInput{
		ScholarshipID: req.ScholarshipID,
		Title:         req.ScholarshipTitle,
		Provider:      req.ScholarshipProvider,
		Country:       req.ScholarshipCountry,
		Deadline:      req.ScholarshipDeadline,
		Amount:        req.ScholarshipAmount,
		Level:         req.ScholarshipLevel,
		Field:         req.ScholarshipField,
	})
	if err != nil {
		if errors.Is(err, dashboard.ErrAlreadyFavorited) {
			writeError(w, http.StatusConflict, "Scholarship already in favorites")
			return
		}
		log.Printf("Error adding favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add scholarship to favorites")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Scholarship added to favorites",
		"favorite_id": favoriteID,
	})
}

type removeFavoriteRequest struct {
	ScholarshipID string `json:"scholarship_id"`
}

// RemoveFavorite — удаление стипендии из избранного
func RemoveFavorite(w http.ResponseWriter, r *http.Request, store dashboard.FavoriteStore) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req removeFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ScholarshipID == "" {
		writeError(w, http.StatusBadRequest, "Scholarship ID is required")
		return
	}

	if err := store.Remove(claims.UserID, req.ScholarshipID); err != nil {
		if errors.Is(err, dashboard.ErrFavoriteNotFound) {
			writeError(w, http.StatusNotFound, "Scholarship not found in favorites")
			return
		}
		log.Printf("Error removing favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove scholarship from favorites")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Scholarship removed from favorites",
	})
}
