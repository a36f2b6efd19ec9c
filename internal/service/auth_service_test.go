package service

import (
	"context"
	"errors"
	"testing"

	"agrirent/internal/dto"
	"agrirent/internal/entity"
	"agrirent/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, repo *fakeUserRepository, phone, password string, role entity.Role) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &entity.User{
		Phone:        phone,
		Name:         "Test User",
		PasswordHash: string(hash),
		PrimaryRole:  role,
		ActiveRole:   role,
		IsActive:     true,
	}

	var profile entity.Profile
	if role == entity.RoleFarmer {
		profile = &entity.FarmerProfile{
			FarmLocation:      "Melur Road",
			FarmSize:          2.5,
			FarmType:          entity.FarmTypeCrop,
			YearsOfExperience: 5,
			Village:           "Melur",
			Taluk:             "Melur",
			District:          "Madurai",
			Pincode:           "600001",
		}
	} else {
		profile = &entity.OwnerProfile{
			BusinessType:        entity.BusinessTypeIndividual,
			YearsInBusiness:     3,
			ServiceDistricts:    []string{"Madurai"},
			MaxDeliveryDistance: 50,
			AddressLine1:        "12 Main Street",
			City:                "Madurai",
			District:            "Madurai",
			Pincode:             "625001",
		}
	}

	if err := repo.CreateWithProfile(context.Background(), user, profile); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	res, err := svc.Login(context.Background(), dto.LoginInput{Phone: "9876543210", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: unexpected error: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
	if res.ActiveProfile == nil || res.ActiveProfile.Type != "farmer" {
		t.Error("expected farmer active profile")
	}
	if !res.ActiveProfile.IsComplete {
		t.Error("expected complete profile flag")
	}
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	_, wrongPassword := svc.Login(context.Background(), dto.LoginInput{Phone: "9876543210", Password: "nope"})
	_, unknownPhone := svc.Login(context.Background(), dto.LoginInput{Phone: "9999999999", Password: "secret123"})

	if !errors.Is(wrongPassword, apperror.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownPhone, apperror.ErrInvalidCredentials) {
		t.Errorf("unknown phone: expected ErrInvalidCredentials, got %v", unknownPhone)
	}
	if wrongPassword.Error() != unknownPhone.Error() {
		t.Error("expected identical outcomes for unknown phone and wrong password")
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	user := seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)
	user.IsActive = false

	_, err := svc.Login(context.Background(), dto.LoginInput{Phone: "9876543210", Password: "secret123"})
	if !errors.Is(err, apperror.ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
}

func TestLoginNormalizesPhone(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	_, err := svc.Login(context.Background(), dto.LoginInput{Phone: "98765 43210", Password: "secret123"})
	if err != nil {
		t.Fatalf("expected login with formatted phone to succeed, got %v", err)
	}
}

func TestSwitchRoleRequiresProfileRecord(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	user := seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	_, err := svc.SwitchRole(context.Background(), user, entity.RoleOwner)
	if !errors.Is(err, apperror.ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
	if user.ActiveRole != entity.RoleFarmer {
		t.Errorf("expected active role unchanged, got %s", user.ActiveRole)
	}
}

func TestSwitchRoleIgnoresCompleteness(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	user := seedUser(t, repo, "9876543210", "secret123", entity.RoleOwner)

	// Bare record: incomplete, but existence is all that gates switching.
	user.FarmerProfile = &entity.FarmerProfile{UserID: user.ID}

	res, err := svc.SwitchRole(context.Background(), user, entity.RoleFarmer)
	if err != nil {
		t.Fatalf("switch role: unexpected error: %v", err)
	}
	if res.ActiveRole != "farmer" {
		t.Errorf("expected active role farmer, got %s", res.ActiveRole)
	}
	if res.ActiveProfile == nil {
		t.Fatal("expected active profile in response")
	}
	if res.ActiveProfile.IsComplete {
		t.Error("expected incomplete profile flag after switching to a bare record")
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.ActiveRole != entity.RoleFarmer {
		t.Errorf("expected persisted active role farmer, got %s", stored.ActiveRole)
	}
}

func TestRoleAvailability(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())
	user := seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	res := svc.RoleAvailability(user)

	farmer := res.AvailableRoles["farmer"]
	owner := res.AvailableRoles["owner"]

	if !farmer.Available || !owner.Available {
		t.Error("expected both roles to always report available")
	}
	if !farmer.HasProfile || !farmer.IsComplete {
		t.Error("expected farmer role to have a complete profile")
	}
	if owner.HasProfile || owner.IsComplete {
		t.Error("expected owner role to have no profile yet")
	}
	if res.CurrentRole != "farmer" || res.PrimaryRole != "farmer" {
		t.Errorf("unexpected roles: current=%s primary=%s", res.CurrentRole, res.PrimaryRole)
	}
}

func TestLogoutRevokesOnlyPresentedToken(t *testing.T) {
	repo := newFakeUserRepository()
	tokens := newTestTokenService()
	svc := NewAuthService(repo, tokens)
	seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	ctx := context.Background()
	first, err := svc.Login(ctx, dto.LoginInput{Phone: "9876543210", Password: "secret123"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, dto.LoginInput{Phone: "9876543210", Password: "secret123"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	claims, err := tokens.Parse(ctx, first.Token)
	if err != nil {
		t.Fatalf("parse first token: %v", err)
	}
	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, ok := svc.CheckToken(ctx, first.Token); ok {
		t.Error("expected revoked token to be rejected")
	}
	if _, ok := svc.CheckToken(ctx, second.Token); !ok {
		t.Error("expected the other session's token to stay live")
	}
}

func TestCheckTokenNeverErrors(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, newTestTokenService())

	if _, ok := svc.CheckToken(context.Background(), ""); ok {
		t.Error("expected empty token to report unauthenticated")
	}
	if _, ok := svc.CheckToken(context.Background(), "not-a-token"); ok {
		t.Error("expected garbage token to report unauthenticated")
	}
}

func TestCheckTokenDeactivatedUser(t *testing.T) {
	repo := newFakeUserRepository()
	tokens := newTestTokenService()
	svc := NewAuthService(repo, tokens)
	user := seedUser(t, repo, "9876543210", "secret123", entity.RoleFarmer)

	token, err := tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	user.IsActive = false
	if _, ok := svc.CheckToken(context.Background(), token); ok {
		t.Error("expected deactivated user's token to report unauthenticated")
	}
}
