package models

type Student struct {
    ID        uint    `gorm:"primaryKey" json:"id"`
    RollNo    string  `gorm:"unique;not null" json:"roll_no"`
    Name      string  `gorm:"not null" json:"name"`
    Course    string  `gorm:"not null" json:"course"`
    Email     string  `gorm:"unique" json:"email"`
    Phone     string  `json:"phone"`
    TotalDues float64 `gorm:"default:0" json:"total_dues"`
}
