package service

import (
	"context"

	"agrirent/internal/dto"
	"agrirent/internal/entity"
	"agrirent/internal/repository"
	"agrirent/pkg/apperror"
	pkgvalidator "agrirent/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	Logout(ctx context.Context, claims *TokenClaims) error
	// CheckToken resolves a bearer token to a live user. It reports
	// false instead of erroring for anything short of a working token.
	CheckToken(ctx context.Context, tokenString string) (*entity.User, bool)
	SwitchRole(ctx context.Context, user *entity.User, role entity.Role) (*dto.SwitchRoleResponse, error)
	RoleAvailability(user *entity.User) *dto.RoleAvailabilityResponse
}

type authService struct {
	users  repository.UserRepository
	tokens *TokenService
}

func NewAuthService(users repository.UserRepository, tokens *TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	phone := pkgvalidator.NormalizePhone(input.Phone)

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if repository.IsNotFound(err) {
			// Same outcome as a wrong password: no account enumeration.
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperror.ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:          dto.NewUserResponse(user),
		ActiveProfile: dto.NewActiveProfileResponse(user),
		Token:         token,
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *TokenClaims) error {
	return s.tokens.Revoke(ctx, claims)
}

func (s *authService) CheckToken(ctx context.Context, tokenString string) (*entity.User, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims, err := s.tokens.Parse(ctx, tokenString)
	if err != nil {
		return nil, false
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil || !user.IsActive {
		return nil, false
	}

	return user, true
}

// SwitchRole flips the active role. Only profile existence gates the
// switch; completeness gates feature access later, in the role
// middleware.
func (s *authService) SwitchRole(ctx context.Context, user *entity.User, role entity.Role) (*dto.SwitchRoleResponse, error) {
	if !role.Valid() {
		return nil, apperror.ErrBadRequest
	}

	if !user.HasProfile(role) {
		return nil, apperror.ErrProfileMissing
	}

	if err := s.users.UpdateActiveRole(ctx, user.ID, role); err != nil {
		return nil, err
	}
	user.ActiveRole = role

	return &dto.SwitchRoleResponse{
		ActiveRole:    role.String(),
		ActiveProfile: dto.NewActiveProfileResponse(user),
	}, nil
}

func (s *authService) RoleAvailability(user *entity.User) *dto.RoleAvailabilityResponse {
	farmerComplete := false
	if user.FarmerProfile != nil {
		farmerComplete = user.FarmerProfile.IsComplete()
	}
	ownerComplete := false
	if user.OwnerProfile != nil {
		ownerComplete = user.OwnerProfile.IsComplete()
	}

	return &dto.RoleAvailabilityResponse{
		CurrentRole: user.ActiveRole.String(),
		PrimaryRole: user.PrimaryRole.String(),
		AvailableRoles: map[string]dto.RoleStatus{
			entity.RoleFarmer.String(): {
				Available:  true,
				HasProfile: user.HasFarmerProfile(),
				IsComplete: farmerComplete,
			},
			entity.RoleOwner.String(): {
				Available:  true,
				HasProfile: user.HasOwnerProfile(),
				IsComplete: ownerComplete,
			},
		},
	}
}
