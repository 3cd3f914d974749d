package response

type AuthResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
	Token   string `json:"token"`
}

type TodoCreatedResponse struct {
	Message string `json:"message"`
	TodoID  int    `json:"todoId"`
}

type TodoCompletedResponse struct {
	Message string `json:"message"`
	TodoID  int    `json:"todoId"`
}

type TodoResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
