package request

type InitConfigRequest struct {
	MasterPassword    string `json:"master_password" binding:"required"`
	SecondaryPassword string `json:"secondary_password" binding:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type CRMLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
