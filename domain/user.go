package domain

import (
	"errors"
	"mime/multipart"
)

// Top-up bounds in rupiah, enforced at the request boundary only. The top-up
// operation itself accepts any positive amount (see user.UserService.TopUp).
const (
	TopUpMinAmount = 10_000
	TopUpMaxAmount = 10_000_000
)

var (
	MessageSuccessLogin         = "login success"
	MessageSuccessRegister      = "register success"
	MessageSuccessLogout        = "logout success"
	MessageSuccessGetMe         = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessTopUp         = "top up success"
	MessageSuccessUploadAvatar  = "avatar uploaded successfully"

	MessageFailedLogin         = "email or password wrong"
	MessageFailedRegister      = "failed to register"
	MessageFailedGetMe         = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedTopUp         = "failed to top up"
	MessageFailedUploadAvatar  = "failed to upload avatar"

	ErrCredentialsWrong   = errors.New("email or password wrong")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	RegisterRequest struct {
		Nama     string `json:"nama" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		NomorHP  string `json:"nomor_hp" validate:"required"`
		Alamat   string `json:"alamat"`
	}

	UpdateProfileRequest struct {
		Nama    string `json:"nama" validate:"required"`
		NomorHP string `json:"nomor_hp" validate:"required"`
		Alamat  string `json:"alamat"`
	}

	TopUpRequest struct {
		Amount int64 `json:"amount" validate:"required,min=10000,max=10000000"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `form:"avatar" validate:"required"`
	}

	UserResponse struct {
		ID      string `json:"id"`
		Nama    string `json:"nama"`
		Email   string `json:"email"`
		NomorHP string `json:"nomor_hp"`
		Alamat  string `json:"alamat"`
		Saldo   int64  `json:"saldo"`
		Foto    string `json:"foto,omitempty"`
	}
)
