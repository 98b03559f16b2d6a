package users

type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Registration creates a CUSTOMER account.
type Registration struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Address  string `json:"address" binding:"omitempty,max=255"`
}

// Input is the manager-side create/update payload. Password is optional on
// update.
type Input struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password,omitempty" binding:"omitempty,min=6,max=72"`
	Role     Role   `json:"role" binding:"required,oneof=CUSTOMER EMPLOYEE MANAGER ADMIN"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address  string `json:"address,omitempty" binding:"omitempty,max=255"`
}
