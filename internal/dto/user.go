package dto

type CreateUserRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Admin    bool   `json:"admin"`
}

type UpdateUserRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Admin    bool   `json:"admin"`
}

type UserResponseDTO struct {
	ID       int    `json:"id" example:"3"`
	Username string `json:"username" example:"jlopez"`
	Admin    bool   `json:"admin" example:"false"`
}
