package service

import (
	"context"
	"errors"
	"time"

	"agrirent/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User

	// failProfileCreate simulates a constraint violation inside the
	// registration transaction: the whole create is rolled back.
	failProfileCreate bool
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile entity.Profile) error {
	if f.failProfileCreate {
		return errors.New("profile constraint violation")
	}

	for _, existing := range f.users {
		if existing.Phone == user.Phone {
			return errors.New("duplicate phone")
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	switch p := profile.(type) {
	case *entity.FarmerProfile:
		p.UserID = user.ID
		user.FarmerProfile = p
	case *entity.OwnerProfile:
		p.UserID = user.ID
		user.OwnerProfile = p
	}

	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) UpdateActiveRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	user, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.ActiveRole = role
	return nil
}

type fakeProfileRepository struct {
	farmers map[uuid.UUID]*entity.FarmerProfile
	owners  map[uuid.UUID]*entity.OwnerProfile
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{
		farmers: make(map[uuid.UUID]*entity.FarmerProfile),
		owners:  make(map[uuid.UUID]*entity.OwnerProfile),
	}
}

func (f *fakeProfileRepository) CreateFarmer(ctx context.Context, profile *entity.FarmerProfile) error {
	if _, exists := f.farmers[profile.UserID]; exists {
		return errors.New("duplicate farmer profile")
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.farmers[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepository) CreateOwner(ctx context.Context, profile *entity.OwnerProfile) error {
	if _, exists := f.owners[profile.UserID]; exists {
		return errors.New("duplicate owner profile")
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.owners[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepository) SaveFarmer(ctx context.Context, profile *entity.FarmerProfile) error {
	f.farmers[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepository) SaveOwner(ctx context.Context, profile *entity.OwnerProfile) error {
	f.owners[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepository) FindFarmerByUserID(ctx context.Context, userID uuid.UUID) (*entity.FarmerProfile, error) {
	profile, ok := f.farmers[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepository) FindOwnerByUserID(ctx context.Context, userID uuid.UUID) (*entity.OwnerProfile, error) {
	profile, ok := f.owners[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

type fakeRevocationStore struct {
	revoked map[string]bool
}

func newFakeRevocationStore() *fakeRevocationStore {
	return &fakeRevocationStore{revoked: make(map[string]bool)}
}

func (f *fakeRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	f.revoked[jti] = true
	return nil
}

func (f *fakeRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret", time.Hour, newFakeRevocationStore())
}
