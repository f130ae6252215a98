package dashboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"futurepath-backend/controllers/authentication"
	"futurepath-backend/models/dashboard"
)

type createGoalRequest struct {
	GoalTitle            string  `json:"goal_title"`
	GoalDescription      *string `json:"goal_description"`
	TargetField          *string `json:"target_field"`
	TargetCountry        *string `json:"target_country"`
	TargetDegreeLevel    *string `json:"target_degree_level"`
	TargetCompletionDate *string `json:"target_completion_date"`
}

// CreateCareerGoal — новая цель всегда начинается как planning с нулевым прогрессом
func CreateCareerGoal(w http.ResponseWriter, r *http.Request, store dashboard.GoalStore) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.GoalTitle == "" {
		writeError(w, http.StatusBadRequest, "Goal title is required")
		return
	}

	goal, err := store.Create(claims.UserID, dashboard.GoalInput{
		GoalTitle:            req.GoalTitle,
		GoalDescription:      req.GoalDescription,
		TargetField:          req.TargetField,
		TargetCountry:        req.TargetCountry,
		TargetDegreeLevel:    req.TargetDegreeLevel,
		TargetCompletionDate: req.TargetCompletionDate,
	})
	if err != nil {
		log.Printf("Error creating career goal: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create career goal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Career goal created successfully",
		"goal": map[string]interface{}{
			"id":         goal.ID,
			"goal_title": goal.GoalTitle,
			"created_at": goal.CreatedAt,
		},
	})
}

type updateGoalRequest struct {
	GoalID             uint    `json:"goal_id"`
	ProgressPercentage *int    `json:"progress_percentage"`
	CurrentStatus      *string `json:"current_status"`
}

// UpdateCareerGoal — частичное обновление прогресса и/или статуса
func UpdateCareerGoal(w http.ResponseWriter, r *http.Request, store dashboard.GoalStore) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.GoalID == 0 {
		writeError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	goal, err := store.Update(claims.UserID, req.GoalID, dashboard.GoalPatch{
		ProgressPercentage: req.ProgressPercentage,
		CurrentStatus:      req.CurrentStatus,
	})
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrProgressOutOfRange):
			writeError(w, http.StatusBadRequest, "Progress percentage must be between 0 and 100")
		case errors.Is(err, dashboard.ErrNoFieldsToUpdate):
			writeError(w, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, dashboard.ErrGoalNotFound):
			writeError(w, http.StatusNotFound, "Career goal not found or access denied")
		default:
			log.Printf("Error updating career goal: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update career goal")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Career goal updated successfully",
		"goal": map[string]interface{}{
			"id":                  goal.ID,
			"goal_title":          goal.GoalTitle,
			"progress_percentage": goal.ProgressPercentage,
			"current_status":      goal.CurrentStatus,
			"updated_at":          goal.UpdatedAt,
		},
	})
}
