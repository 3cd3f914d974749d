package request

type RegisterRequest struct {
	Email    string `json:"email,omitempty" validate:"required"`
	Name     string `json:"name,omitempty" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

type TodoRequest struct {
	Title string `json:"title,omitempty" validate:"required"`
}
