package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserRegisterRequest struct {
	Name            string `json:"name" validate:"required,min=5,max=25"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=5,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	OTP             string `json:"otp" validate:"required,len=6,numeric"`
	Password        string `json:"password" validate:"required,min=5,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type ProfileUpdateRequest struct {
	Name        string  `json:"name" validate:"required,min=5,max=25"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Designation *string `json:"designation" validate:"omitempty,max=100"`
	Mobile      *string `json:"mobile" validate:"omitempty,max=20"`
}

type PasswordResetTemplateData struct {
	Name      string
	OTP       string
	ExpiresIn int64
}

type UserResponse struct {
	Id                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Designation       *string   `json:"designation"`
	Mobile            *string   `json:"mobile"`
	Image             *string   `json:"image"`
	ImageURL          *string   `json:"imageUrl"`
	ThumbnailImageURL *string   `json:"thumbnailImageUrl"`
	CreateDatetime    time.Time `json:"createDatetime"`
	UpdateDatetime    time.Time `json:"updateDatetime"`
}

type User struct {
	Id             int64
	Name           string
	Email          string
	Password       string
	Designation    *string
	Mobile         *string
	Image          *string
	Role           string
	CreateDatetime time.Time
	UpdateDatetime time.Time
}
