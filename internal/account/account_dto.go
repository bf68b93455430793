package account

import "time"

type RegisterRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name"`
	BirthDate      string  `json:"birth_date" binding:"required"`
	Gender         string  `json:"gender" binding:"required,oneof=male female"`
	HiringDate     string  `json:"hiring_date" binding:"required"`
	PhoneNumber    string  `json:"phone_number" binding:"required"`
	UniversityCode string  `json:"university_code" binding:"required"`
	UniversityName string  `json:"university_name" binding:"required"`
	Major          string  `json:"major" binding:"required"`
	Degree         string  `json:"degree" binding:"required"`
	GPA            float64 `json:"gpa" binding:"required,gte=0,lte=4"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest deliberately has no eqfield tag on the
// confirmation: the mismatch must be reported after the OTP checks, not
// by input validation.
type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	OTP             int    `json:"otp" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type CreateAccountRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Password   string `json:"password" binding:"required,min=6"`
}

type UpdateAccountRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterResponse is the composed detail view assembled from the
// entities the registration resolved or created.
type RegisterResponse struct {
	ID          string  `json:"id"`
	NIK         string  `json:"nik"`
	FullName    string  `json:"full_name"`
	BirthDate   string  `json:"birth_date"`
	Gender      string  `json:"gender"`
	HiringDate  string  `json:"hiring_date"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Major       string  `json:"major"`
	Degree      string  `json:"degree"`
	GPA         float64 `json:"gpa"`
	University  string  `json:"university"`
}

type ForgotPasswordResponse struct {
	ID          string    `json:"id"`
	OTP         int       `json:"otp"`
	ExpiredTime time.Time `json:"expired_time"`
	IsUsed      bool      `json:"is_used"`
}

type AccountResponse struct {
	ID          string    `json:"id"`
	ExpiredTime time.Time `json:"expired_time"`
	IsUsed      bool      `json:"is_used"`
}

func toResponse(a *Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID.String(),
		ExpiredTime: a.ExpiredTime,
		IsUsed:      a.IsUsed,
	}
}
