package education

import (
	"time"

	"github.com/google/uuid"
)

// Education shares its primary key with the owning Employee: one active
// education record per employee.
type Education struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Major        string    `gorm:"type:varchar(100);not null"`
	Degree       string    `gorm:"type:varchar(100);not null"`
	GPA          float64
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
