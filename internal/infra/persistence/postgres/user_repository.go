// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
// Unique-constraint violations from the DB are the authoritative guard for
// the registration race and surface as conflict errors.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if uniqueViolationColumn(err, "username", "email") == "email" {
				return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
			}

			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// List retrieves users with offset/limit pagination, ordered by creation time
// so paging is deterministic for a given dataset.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	var userModels []model.UserModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&userModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		Role:         data.Role.String(),
	}
}
