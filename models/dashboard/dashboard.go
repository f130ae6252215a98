package dashboard

import (
	"errors"

	"gorm.io/gorm"

	"futurepath-backend/models/users"
)

type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Dashboard struct {
	Profile     *users.UserProfile    `json:"profile"`
	Favorites   []FavoriteScholarship `json:"favorites"`
	CareerGoals []CareerGoal          `json:"careerGoals"`
	User        SessionUser           `json:"user"`
}

// Aggregate собирает профиль, избранное и цели одним снимком.
// Все три чтения идут в одной транзакции, чтобы клиент не увидел
// рассинхронизированные списки.
func Aggregate(db *gorm.DB, targetUserID uint) (*Dashboard, error) {
	data := &Dashboard{
		Favorites:   []FavoriteScholarship{},
		CareerGoals: []CareerGoal{},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var profile users.UserProfile
		err := tx.Where("user_id = ?", targetUserID).First(&profile).Error
		switch {
		case err == nil:
			data.Profile = &profile
		case errors.Is(err, gorm.ErrRecordNotFound):
			// профиль может отсутствовать, отдаем null
		default:
			return err
		}

		if err := tx.Where("user_id = ?", targetUserID).
			Order("created_at DESC").
			Find(&data.Favorites).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", targetUserID).
			Order("created_at DESC").
			Find(&data.CareerGoals).Error
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
