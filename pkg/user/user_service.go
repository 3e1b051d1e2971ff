package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"strays-backend/domain"
	"strays-backend/entities"
	"strays-backend/pkg/jwt"
)

const (
	leaderboardCacheKey = "cache:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
	leaderboardSize     = 10
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error
		Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		rdb            *redis.Client
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, rdb *redis.Client) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		rdb:            rdb,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	if !domain.ValidRole(req.Role) {
		return domain.UserResponse{}, domain.ErrInvalidRole
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
		Role:     req.Role,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Points:   user.Points,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Points:   user.Points,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if other, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil && other.ID != user.ID {
		return domain.ErrEmailAlreadyRegistered
	}
	if other, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil && other.ID != user.ID {
		return domain.ErrUsernameAlreadyRegistered
	}

	user.Username = req.Username
	user.Email = req.Email
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if s.rdb != nil {
		if data, err := s.rdb.Get(ctx, leaderboardCacheKey).Bytes(); err == nil {
			var entries []domain.LeaderboardEntry
			if json.Unmarshal(data, &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.userRepository.GetTopUsers(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, domain.LeaderboardEntry{
			Username: u.Username,
			Points:   u.Points,
		})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.rdb.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				log.Warnf("error caching leaderboard: %v", err)
			}
		}
	}

	return entries, nil
}
