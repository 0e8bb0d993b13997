package model

type Question struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Question   string `json:"question" gorm:"type:text;not null"`
	Answer     string `json:"answer" gorm:"type:text;not null"`
	Category   string `json:"category" gorm:"not null;index"` // Category.ID as text, not a foreign key
	Difficulty int    `json:"difficulty" gorm:"not null"`
}
