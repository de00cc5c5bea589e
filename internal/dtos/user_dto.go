package dtos

type SignupRequest struct {
	FirstName     string `json:"first_name" binding:"required,min=1,max=50"`
	LastName      string `json:"last_name" binding:"required,min=1,max=50"`
	Username      string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,password"`
	RecoveryEmail string `json:"recovery_email" binding:"omitempty,email"`
	DOB           string `json:"dob" binding:"required,datetime=2006-01-02"`
	MobileNumber  string `json:"mobile_number" binding:"required,mobile"`
	Role          string `json:"role" binding:"required,oneof=User Company_HR"`
}

type ConfirmEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

// SigninRequest accepts any one of the three identifiers.
type SigninRequest struct {
	Email         string `json:"email" binding:"omitempty,email"`
	RecoveryEmail string `json:"recovery_email" binding:"omitempty,email"`
	MobileNumber  string `json:"mobile_number" binding:"omitempty,mobile"`
	Password      string `json:"password" binding:"required"`
}

// UpdateAccountRequest merges partially: empty fields are left alone.
type UpdateAccountRequest struct {
	FirstName     string `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName      string `json:"last_name" binding:"omitempty,min=1,max=50"`
	Email         string `json:"email" binding:"omitempty,email"`
	RecoveryEmail string `json:"recovery_email" binding:"omitempty,email"`
	DOB           string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	MobileNumber  string `json:"mobile_number" binding:"omitempty,mobile"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required,password"`
}

type RecoveryAccountsQuery struct {
	RecoveryEmail string `form:"recovery_email" binding:"required,email"`
}
