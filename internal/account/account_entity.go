package account

import (
	"time"

	"github.com/google/uuid"
)

// Account shares its primary key with the owning Employee; an account
// never exists without one. OTP, ExpiredTime and IsUsed together hold
// the password-recovery state and are always written as a unit.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Password    string    `gorm:"type:varchar(255);not null"`
	OTP         int
	ExpiredTime time.Time
	IsUsed      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
