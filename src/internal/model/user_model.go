package model

import "time"

type GetUserRequest struct {
	ID string `json:"id" validate:"required,max=100"`
}

type UserResponse struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	MobileNumber string     `json:"mobile_number,omitempty"`
	Role         string     `json:"role,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
