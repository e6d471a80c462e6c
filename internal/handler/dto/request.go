package dto

type CreateLandRequest struct {
	LandID      string  `json:"land_id" binding:"required"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Square      float64 `json:"square" binding:"required,gt=0"`
	LandDataURL string  `json:"land_data_url" binding:"omitempty,url"`
	Status      int     `json:"status" binding:"min=0,max=2"`
}

type UpdateLandStatusRequest struct {
	Status *int `json:"status" binding:"required,min=0,max=2"`
}

type CreateFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname"`
	Phone   string `json:"phone" binding:"required"`
	LandID  string `json:"land_id" binding:"required"`
}
