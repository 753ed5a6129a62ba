package models

import "time"

// Payment is an immutable record of one payment event. Rows are only ever
// inserted; nothing in the system updates or deletes them.
type Payment struct {
    ID          uint      `gorm:"primaryKey" json:"id"`
    StudentID   uint      `gorm:"not null;index" json:"student_id"`
    Student     Student   `gorm:"foreignKey:StudentID" json:"-"`
    Amount      float64   `gorm:"not null" json:"amount"`
    PaymentDate time.Time `json:"payment_date"`
    Method      string    `gorm:"default:online" json:"method"`
    ReceiptNo   string    `gorm:"unique" json:"receipt_no"`
}
