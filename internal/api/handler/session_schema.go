package handler

type loginRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	CompanyID string `json:"companyId"`
}

type registerRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=8"`
	FirstName   string `json:"firstName"   validate:"required"`
	LastName    string `json:"lastName"    validate:"required"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"        validate:"omitempty,oneof=company_admin admin manager hr employee"`
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type authResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
