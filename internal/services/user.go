package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/repos"
	"github.com/orbitware/orbit-backend/internal/requestdata"
	"github.com/orbitware/orbit-backend/internal/types"
)

type ProfileUpdate struct {
	FullName *string
	Phone    *string
	Age      *int
	Salary   *float64
}

type UserService interface {
	GetProfile(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetProfile(ctx context.Context) (*types.User, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (us *userService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.User, error) {
	user, err := us.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Age != nil {
		user.Age = update.Age
	}
	if update.Salary != nil {
		user.Salary = update.Salary
	}
	if err := us.userRepo.Update(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// currentUserID pulls the authenticated user out of the request context.
func currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("no authenticated user in request")
	}
	return rd.UserID, nil
}
