package user

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"strays-backend/domain"
	"strays-backend/entities"
)

type fakeUserRepo struct {
	users  map[string]*entities.User
	points map[string]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*entities.User),
		points: make(map[string]int),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *entities.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) AddPoints(_ context.Context, id string, delta int) error {
	f.points[id] += delta
	return nil
}

func (f *fakeUserRepo) GetTopUsers(_ context.Context, limit int) ([]*entities.User, error) {
	users := make([]*entities.User, 0, limit)
	for _, u := range f.users {
		users = append(users, u)
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (f *fakeJWTService) ValidateTokenUser(_ string) (*jwt.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetUserIDByToken(_ string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, &fakeJWTService{}, nil)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDonor, res.Role)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "donor1",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleDonor, login.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, &fakeJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor2",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     domain.RoleDonor,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, &fakeJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor2@example.com",
		Role:     domain.RoleDonor,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyRegistered)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewUserService(newFakeUserRepo(), &fakeJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, &fakeJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Username: "donor1",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLeaderboardWithoutCache(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["a"] = &entities.User{ID: uuid.New(), Username: "donor1", Points: 50}
	repo.users["b"] = &entities.User{ID: uuid.New(), Username: "volunteer1", Points: 30}

	service := NewUserService(repo, &fakeJWTService{}, nil)

	entries, err := service.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, &fakeJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor1",
		Password: "secret123",
		Email:    "donor1@example.com",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)
	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "donor2",
		Password: "secret123",
		Email:    "donor2@example.com",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)

	second, err := repo.GetUserByUsername(context.Background(), "donor2")
	require.NoError(t, err)

	err = service.UpdateProfile(context.Background(), second.ID.String(), domain.UpdateProfileRequest{
		Username: "donor1",
		Email:    "donor2@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyRegistered)
}
