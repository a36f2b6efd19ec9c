package repository

import (
	"context"

	"agrirent/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	CreateFarmer(ctx context.Context, profile *entity.FarmerProfile) error
	CreateOwner(ctx context.Context, profile *entity.OwnerProfile) error
	SaveFarmer(ctx context.Context, profile *entity.FarmerProfile) error
	SaveOwner(ctx context.Context, profile *entity.OwnerProfile) error
	FindFarmerByUserID(ctx context.Context, userID uuid.UUID) (*entity.FarmerProfile, error)
	FindOwnerByUserID(ctx context.Context, userID uuid.UUID) (*entity.OwnerProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateFarmer(ctx context.Context, profile *entity.FarmerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) CreateOwner(ctx context.Context, profile *entity.OwnerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) SaveFarmer(ctx context.Context, profile *entity.FarmerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) SaveOwner(ctx context.Context, profile *entity.OwnerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) FindFarmerByUserID(ctx context.Context, userID uuid.UUID) (*entity.FarmerProfile, error) {
	var profile entity.FarmerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindOwnerByUserID(ctx context.Context, userID uuid.UUID) (*entity.OwnerProfile, error) {
	var profile entity.OwnerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
