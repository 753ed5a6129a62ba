package models

import "time"

type FeeStructure struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    StudentID uint      `gorm:"not null;index" json:"student_id"`
    Student   Student   `gorm:"foreignKey:StudentID" json:"-"`
    FeeType   string    `gorm:"not null" json:"fee_type"`
    Amount    float64   `gorm:"not null" json:"amount"`
    DueDate   time.Time `gorm:"not null" json:"due_date"`
    Status    string    `gorm:"default:pending" json:"status"` // pending, paid, overdue
}
