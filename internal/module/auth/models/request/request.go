package request

type Register struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
	Phone           string `json:"phone"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordConfirm struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type UpdateProfile struct {
	Name            string `json:"name" validate:"required"`
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
	Phone           string `json:"phone"`
}
