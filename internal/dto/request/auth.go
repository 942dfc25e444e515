package request

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// DemoLoginRequest is the /registration form. Username and password are
// accepted but never checked.
type DemoLoginRequest struct {
	Role     string `json:"role" form:"role"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
