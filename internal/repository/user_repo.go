package repository

import (
	"context"
	"errors"
	"fmt"

	"agrirent/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// CreateWithProfile persists the user and its role profile in one
	// transaction; neither row survives a failure of the other.
	CreateWithProfile(ctx context.Context, user *entity.User, profile entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	UpdateActiveRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile entity.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		switch p := profile.(type) {
		case *entity.FarmerProfile:
			p.UserID = user.ID
			if err := tx.Create(p).Error; err != nil {
				return err
			}
			user.FarmerProfile = p
		case *entity.OwnerProfile:
			p.UserID = user.ID
			if err := tx.Create(p).Error; err != nil {
				return err
			}
			user.OwnerProfile = p
		default:
			return fmt.Errorf("unsupported profile type %T", profile)
		}

		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("OwnerProfile").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("OwnerProfile").
		Where("phone = ?", phone).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("phone = ?", phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateActiveRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("active_role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
