package university

type CreateUniversityRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UpdateUniversityRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UniversityResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func toResponse(u *University) UniversityResponse {
	return UniversityResponse{
		ID:   u.ID.String(),
		Code: u.Code,
		Name: u.Name,
	}
}
