package api

// Common request/response structures

// CreateCourseRequest defines the payload for creating a course.
type CreateCourseRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCourseRequest defines the payload for replacing a course's fields.
type UpdateCourseRequest struct {
	Name string `json:"name" validate:"required"`
}

// RegisterUserRequest defines the payload for the user registration endpoint.
type RegisterUserRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email,min=5,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateUserRequest defines the payload for updating a user. Fields are
// optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,min=3,max=50"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,min=5,max=50"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the JWT used for API authorization
	Token string `json:"token"`
}
