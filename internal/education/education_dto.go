package education

type CreateEducationRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"required,uuid"`
	Major        string  `json:"major" binding:"required"`
	Degree       string  `json:"degree" binding:"required"`
	GPA          float64 `json:"gpa" binding:"required,gte=0,lte=4"`
	UniversityID string  `json:"university_id" binding:"required,uuid"`
}

type UpdateEducationRequest struct {
	Major        string  `json:"major" binding:"required"`
	Degree       string  `json:"degree" binding:"required"`
	GPA          float64 `json:"gpa" binding:"required,gte=0,lte=4"`
	UniversityID string  `json:"university_id" binding:"required,uuid"`
}

type EducationResponse struct {
	ID           string  `json:"id"`
	Major        string  `json:"major"`
	Degree       string  `json:"degree"`
	GPA          float64 `json:"gpa"`
	UniversityID string  `json:"university_id"`
}

func toResponse(e *Education) EducationResponse {
	return EducationResponse{
		ID:           e.ID.String(),
		Major:        e.Major,
		Degree:       e.Degree,
		GPA:          e.GPA,
		UniversityID: e.UniversityID.String(),
	}
}
