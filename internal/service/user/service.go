package user

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) CreateManager(ctx context.Context, req user.CreateManagerRequest) (user.UserResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !claims.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleManager,
		Phone:        req.Phone,
		Locations:    req.Locations,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}

	return responses, nil
}

func (s *userServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(u), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := s.userRepo.UpdateProfile(ctx, claims.UserID, req); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(u), nil
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Locations: u.Locations,
	}
}
