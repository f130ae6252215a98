package dashboard

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrProgressOutOfRange = errors.New("progress percentage must be between 0 and 100")
	ErrGoalNotFound       = errors.New("career goal not found or access denied")
)

const (
	StatusPlanning   = "planning"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
)

type CareerGoal struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"index" json:"user_id"`
	GoalTitle            string    `gorm:"not null" json:"goal_title"`
	GoalDescription      *string   `gorm:"type:text" json:"goal_description"`
	TargetField          *string   `json:"target_field"`
	TargetCountry        *string   `json:"target_country"`
	TargetDegreeLevel    *string   `json:"target_degree_level"`
	TargetCompletionDate *string   `json:"target_completion_date"`
	CurrentStatus        string    `gorm:"not null;default:planning" json:"current_status"`
	ProgressPercentage   int       `gorm:"not null;default:0" json:"progress_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (CareerGoal) TableName() string {
	return "user_career_goals"
}

type GoalInput struct {
	GoalTitle            string
	GoalDescription      *string
	TargetField          *string
	TargetCountry        *string
	TargetDegreeLevel    *string
	TargetCompletionDate *string
}

// GoalPatch — набор опциональных полей частичного обновления.
// Каждое поле отображается в фиксированную колонку, никакой сборки SQL из строк.
type GoalPatch struct {
	ProgressPercentage *int
	CurrentStatus      *string
}

type GoalStore struct {
	DB *gorm.DB
}

// Create всегда стартует цель со статусом planning и нулевым прогрессом
func (s GoalStore) Create(userID uint, input GoalInput) (*CareerGoal, error) {
	goal := CareerGoal{
		UserID:               userID,
		GoalTitle:            input.GoalTitle,
		GoalDescription:      input.GoalDescription,
		TargetField:          input.TargetField,
		TargetCountry:        input.TargetCountry,
		TargetDegreeLevel:    input.TargetDegreeLevel,
		TargetCompletionDate: input.TargetCompletionDate,
		CurrentStatus:        StatusPlanning,
		ProgressPercentage:   0,
	}
	if err := s.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Update применяет patch с предикатом по id и user_id сразу: чужая цель
// неотличима от несуществующей
func (s GoalStore) Update(userID, goalID uint, patch GoalPatch) (*CareerGoal, error) {
	updates := map[string]interface{}{}
	if patch.ProgressPercentage != nil {
		if *patch.ProgressPercentage < 0 || *patch.ProgressPercentage > 100 {
			return nil, ErrProgressOutOfRange
		}
		updates["progress_percentage"] = *patch.ProgressPercentage
	}
	if patch.CurrentStatus != nil && *patch.CurrentStatus != "" {
		updates["current_status"] = *patch.CurrentStatus
	}
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now().UTC()

	result := s.DB.Model(&CareerGoal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGoalNotFound
	}

	var goal CareerGoal
	if err := s.DB.First(&goal, goalID).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s GoalStore) List(userID uint) ([]CareerGoal, error) {
	goals := []CareerGoal{}
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}
