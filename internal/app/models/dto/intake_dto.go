package dto

// CreateComplaintRequest is the public payload for filing a complaint
type CreateComplaintRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=2,max=200"`
	Body    string `json:"body" binding:"required,min=5,max=5000"`
}

// UpdateComplaintStatusRequest is the admin PATCH payload for a complaint
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED"`
}

// CreateJoinApplicationRequest is the public payload for a membership application
type CreateJoinApplicationRequest struct {
	FirstName string  `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string  `json:"lastName" binding:"required,min=2,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Campus    string  `json:"campus" binding:"required,min=2,max=100"`
	Message   *string `json:"message,omitempty" binding:"omitempty,max=2000"`
}

// UpdateApplicationStatusRequest is the admin PATCH payload for an application
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED DECLINED"`
}
