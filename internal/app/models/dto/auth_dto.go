package dto

// RegisterRequest is the payload for student self-registration
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName string  `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string  `json:"lastName" binding:"required,min=2,max=100"`
	Phone     *string `json:"phone,omitempty"`
	Gender    *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the payload for exchanging a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType"`
}

// CreateUserRequest is the admin payload for creating a user with a role
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName string  `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string  `json:"lastName" binding:"required,min=2,max=100"`
	Phone     *string `json:"phone,omitempty"`
	Gender    *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	RoleType  string  `json:"roleType" binding:"required,oneof=STUDENT STAFF ADMIN SUPER_ADMIN"`
}

// UpdateUserRequest is the admin payload for partially updating a user.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone,omitempty"`
	Gender    *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	RoleType  *string `json:"roleType,omitempty" binding:"omitempty,oneof=STUDENT STAFF ADMIN SUPER_ADMIN"`
	IsActive  *bool   `json:"isActive,omitempty"`
}
