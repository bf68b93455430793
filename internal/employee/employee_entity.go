package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NIK         string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_nik;not null"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100)"`
	BirthDate   time.Time
	Gender      string `gorm:"type:varchar(10);not null"`
	HiringDate  time.Time
	Email       string `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmployeeDetail is the joined employee/education/university read model.
type EmployeeDetail struct {
	ID          uuid.UUID `json:"id"`
	NIK         string    `json:"nik"`
	FullName    string    `json:"full_name"`
	BirthDate   time.Time `json:"birth_date"`
	Gender      string    `json:"gender"`
	HiringDate  time.Time `json:"hiring_date"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Major       string    `json:"major"`
	Degree      string    `json:"degree"`
	GPA         float64   `json:"gpa"`
	University  string    `json:"university"`
}
