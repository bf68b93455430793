package employee

type CreateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=male female"`
	HiringDate  string `json:"hiring_date" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=male female"`
	HiringDate  string `json:"hiring_date" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	NIK         string `json:"nik"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Gender      string `json:"gender"`
	HiringDate  string `json:"hiring_date"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func toResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID.String(),
		NIK:         e.NIK,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		BirthDate:   e.BirthDate.Format("2006-01-02"),
		Gender:      e.Gender,
		HiringDate:  e.HiringDate.Format("2006-01-02"),
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
	}
}
