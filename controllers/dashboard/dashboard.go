package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"gorm.io/gorm"

	"futurepath-backend/controllers/authentication"
	"futurepath-backend/models/dashboard"
)

type getUserDataRequest struct {
	UserID uint `json:"user_id"`
}

// GetUserData — агрегированный ответ дашборда: профиль, избранное, цели.
// user_id в теле позволяет читать данные другого пользователя — поведение
// исходной версии, оставлено намеренно (см. DESIGN.md).
func GetUserData(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req getUserDataRequest
	// пустое тело допустимо, тогда берем собственный id вызывающего;
	// битый JSON отклоняем
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	targetUserID := req.UserID
	if targetUserID == 0 {
		targetUserID = claims.UserID
	}
	if targetUserID == 0 {
		writeError(w, http.StatusBadRequest, "User ID required")
		return
	}

	data, err := dashboard.Aggregate(db, targetUserID)
	if err != nil {
		log.Printf("Error fetching dashboard data: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	data.User = dashboard.SessionUser{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}

	writeJSON(w, http.StatusOK, data)
}
