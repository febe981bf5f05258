package dto

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type ChangeChatbotPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
