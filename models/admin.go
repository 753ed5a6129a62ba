package models

type Admin struct {
    ID           uint   `gorm:"primaryKey" json:"id"`
    Username     string `gorm:"unique;not null" json:"username"`
    PasswordHash string `gorm:"not null" json:"-"`
}
