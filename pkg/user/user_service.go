package user

import (
	"context"
	"fmt"
	"mime/multipart"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
	"digital-kuota-backend/internal/utils/storage"
	"digital-kuota-backend/pkg/jwt"
	"digital-kuota-backend/pkg/session"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Logout() error
		Me() (*domain.UserResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.UserResponse, error)
		TopUp(ctx context.Context, amount int64) (*domain.UserResponse, error)
		TopUpUser(ctx context.Context, userID string, amount int64) (*domain.UserResponse, error)
		UploadAvatar(ctx context.Context, file *multipart.FileHeader) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		sessionStore   session.Store
		s3             storage.AwsS3
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	sessionStore session.Store,
	s3 storage.AwsS3,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		sessionStore:   sessionStore,
		s3:             s3,
	}
}

// Login runs the store-side credential filter and, on a match, persists the
// user snapshot as the active session. The store gives no signal to separate
// a wrong password from an unknown email, so neither do we.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredentialsWrong
	}

	if err := s.sessionStore.Set(user); err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID, domain.RoleUser)
	return &domain.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	existing, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	created, err := s.userRepository.Create(ctx, &entities.User{
		Nama:     req.Nama,
		Email:    req.Email,
		Password: req.Password,
		NomorHP:  req.NomorHP,
		Alamat:   req.Alamat,
		Saldo:    0,
	})
	if err != nil {
		return nil, err
	}

	return ToUserResponse(created), nil
}

func (s *userService) Logout() error {
	return s.sessionStore.Clear()
}

// Me answers from the session snapshot, not the store. A stale snapshot stays
// stale until an operation refreshes it with the store's response.
func (s *userService) Me() (*domain.UserResponse, error) {
	user, ok := s.sessionStore.Get()
	if !ok {
		return nil, domain.ErrSessionEmpty
	}
	return ToUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	user, ok := s.sessionStore.Get()
	if !ok {
		return nil, domain.ErrSessionEmpty
	}

	updated, err := s.userRepository.Update(ctx, user.ID, map[string]any{
		"nama":    req.Nama,
		"nomorHP": req.NomorHP,
		"alamat":  req.Alamat,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessionStore.Set(updated); err != nil {
		return nil, err
	}
	return ToUserResponse(updated), nil
}

// TopUp credits the active session's saldo. The [10rb, 10jt] bounds live at
// the request boundary; this operation takes the amount as given.
func (s *userService) TopUp(ctx context.Context, amount int64) (*domain.UserResponse, error) {
	user, ok := s.sessionStore.Get()
	if !ok {
		return nil, domain.ErrSessionEmpty
	}

	updated, err := s.userRepository.UpdateSaldo(ctx, user.ID, user.Saldo+amount)
	if err != nil {
		return nil, err
	}

	if err := s.sessionStore.Set(updated); err != nil {
		return nil, err
	}
	return ToUserResponse(updated), nil
}

// TopUpUser credits an arbitrary user, reading the current saldo from the
// store first. Used by the midtrans settlement webhook, which acts outside
// the session. The session snapshot is refreshed only when it belongs to the
// same user.
func (s *userService) TopUpUser(ctx context.Context, userID string, amount int64) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if restdb.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	updated, err := s.userRepository.UpdateSaldo(ctx, userID, user.Saldo+amount)
	if err != nil {
		return nil, err
	}

	if current, ok := s.sessionStore.Get(); ok && current.ID == userID {
		if err := s.sessionStore.Set(updated); err != nil {
			return nil, err
		}
	}
	return ToUserResponse(updated), nil
}

func (s *userService) UploadAvatar(ctx context.Context, file *multipart.FileHeader) (*domain.UserResponse, error) {
	user, ok := s.sessionStore.Get()
	if !ok {
		return nil, domain.ErrSessionEmpty
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("avatar-%s", user.ID),
		file,
		"avatars",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepository.Update(ctx, user.ID, map[string]any{
		"foto": s.s3.GetPublicLinkKey(objectKey),
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessionStore.Set(updated); err != nil {
		return nil, err
	}
	return ToUserResponse(updated), nil
}

func ToUserResponse(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:      user.ID,
		Nama:    user.Nama,
		Email:   user.Email,
		NomorHP: user.NomorHP,
		Alamat:  user.Alamat,
		Saldo:   user.Saldo,
		Foto:    user.Foto,
	}
}
