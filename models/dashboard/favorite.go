package dashboard

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorited = errors.New("scholarship already in favorites")
	ErrFavoriteNotFound = errors.New("scholarship not found in favorites")
)

// FavoriteScholarship — сохраненная стипендия, данные копируются при добавлении
type FavoriteScholarship struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"index;uniqueIndex:idx_user_scholarship" json:"user_id"`
	ScholarshipID       string    `gorm:"not null;uniqueIndex:idx_user_scholarship" json:"scholarship_id"`
	ScholarshipTitle    string    `gorm:"not null" json:"scholarship_title"`
	ScholarshipProvider *string   `json:"scholarship_provider"`
	ScholarshipCountry  *string   `json:"scholarship_country"`
	ScholarshipDeadline *string   `json:"scholarship_deadline"`
	ScholarshipAmount   *string   `json:"scholarship_amount"`
	ScholarshipLevel    *string   `json:"scholarship_level"`
	ScholarshipField    *string   `json:"scholarship_field"`
	CreatedAt           time.Time `json:"created_at"`
}

func (FavoriteScholarship) TableName() string {
	return "user_favorites"
}

type FavoriteInput struct {
	ScholarshipID string
	Title         string
	Provider      *string
	Country       *string
	Deadline      *string
	Amount        *string
	Level         *string
	Field         *string
}

type FavoriteStore struct {
	DB *gorm.DB
}

// Add проверяет наличие пары (user_id, scholarship_id) и создает запись.
// Проверка и вставка не обернуты в транзакцию, два одновременных вызова
// могут пройти проверку оба — пару дополнительно держит уникальный индекс.
func (s FavoriteStore) Add(userID uint, input FavoriteInput) (uint, error) {
	var existing FavoriteScholarship
	err := s.DB.Select("id").
		Where("user_id = ? AND scholarship_id = ?", userID, input.ScholarshipID).
		First(&existing).Error
	if err == nil {
		return 0, ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	favorite := FavoriteScholarship{
		UserID:              userID,
		ScholarshipID:       input.ScholarshipID,
		ScholarshipTitle:    input.Title,
		ScholarshipProvider: input.Provider,
		ScholarshipCountry:  input.Country,
		ScholarshipDeadline: input.Deadline,
		ScholarshipAmount:   input.Amount,
		ScholarshipLevel:    input.Level,
		ScholarshipField:    input.Field,
	}
	if err := s.DB.Create(&favorite).Error; err != nil {
		return 0, err
	}
	return favorite.ID, nil
}

func (s FavoriteStore) Remove(userID uint, scholarshipID string) error {
	result := s.DB.Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		Delete(&FavoriteScholarship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s FavoriteStore) List(userID uint) ([]FavoriteScholarship, error) {
	favorites := []FavoriteScholarship{}
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
