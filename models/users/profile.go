package users

import "time"

// UserProfile — анкета студента, строка может отсутствовать
type UserProfile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex" json:"user_id"`
	FullName        string    `json:"full_name"`
	Country         string    `json:"country"`
	EducationLevel  string    `json:"education_level"`
	FieldOfInterest string    `json:"field_of_interest"`
	Bio             string    `gorm:"type:text" json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
