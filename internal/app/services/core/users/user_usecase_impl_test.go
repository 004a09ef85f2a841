package users

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryUserRepository struct {
	users map[string]*models.User
}

func (m *memoryUserRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	existing, ok := m.users[user.Email]
	if !ok {
		existing = &models.User{Email: user.Email}
		m.users[user.Email] = existing
	}
	if user.Name != "" {
		existing.Name = user.Name
	}
	saved := *existing
	return &saved, nil
}

func (m *memoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	result := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		result = append(result, *user)
	}
	return result, nil
}

func (m *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (m *memoryUserRepository) SetRole(ctx context.Context, email, role string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	user.Role = role
	updated := *user
	return &updated, nil
}

func (m *memoryUserRepository) EnsureIndexes(ctx context.Context) error { return nil }

const testSecret = "test-secret"

func newUserFixture() (*userUsecase, *memoryUserRepository) {
	repo := &memoryUserRepository{users: make(map[string]*models.User)}
	return NewUserUsecase(repo, testSecret, time.Hour, zap.NewNop()).(*userUsecase), repo
}

func TestUserUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert returns a token for the email", func(t *testing.T) {
		usecase, repo := newUserFixture()

		result, err := usecase.UpsertUser(ctx, &requests.UpsertUser{Email: "ana@example.com", Name: "Ana"})
		require.NoError(t, err)

		email, err := utils.ParseJWT(result.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", email)
		assert.Equal(t, "Ana", result.User.Name)
		assert.Len(t, repo.users, 1)
	})

	t.Run("Upsert keeps the stored role", func(t *testing.T) {
		usecase, repo := newUserFixture()
		repo.users["ana@example.com"] = &models.User{Email: "ana@example.com", Role: constvars.RoleAdmin}

		result, err := usecase.UpsertUser(ctx, &requests.UpsertUser{Email: "ana@example.com"})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, result.User.Role)
	})

	t.Run("IsAdmin", func(t *testing.T) {
		usecase, repo := newUserFixture()
		repo.users["ana@example.com"] = &models.User{Email: "ana@example.com", Role: constvars.RoleAdmin}
		repo.users["ben@example.com"] = &models.User{Email: "ben@example.com"}

		for email, want := range map[string]bool{
			"ana@example.com":     true,
			"ben@example.com":     false,
			"unknown@example.com": false,
		} {
			status, err := usecase.IsAdmin(ctx, email)
			require.NoError(t, err)
			assert.Equal(t, want, status.Admin, email)
		}
	})

	t.Run("MakeAdmin promotes an existing user", func(t *testing.T) {
		usecase, repo := newUserFixture()
		repo.users["ben@example.com"] = &models.User{Email: "ben@example.com"}

		result, err := usecase.MakeAdmin(ctx, "ben@example.com")
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, result.Role)
		assert.True(t, repo.users["ben@example.com"].IsAdmin())
	})

	t.Run("MakeAdmin on an unknown user is not found", func(t *testing.T) {
		usecase, _ := newUserFixture()

		_, err := usecase.MakeAdmin(ctx, "ghost@example.com")
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	})

	t.Run("FindAll lists every user", func(t *testing.T) {
		usecase, repo := newUserFixture()
		repo.users["ana@example.com"] = &models.User{Email: "ana@example.com"}
		repo.users["ben@example.com"] = &models.User{Email: "ben@example.com"}

		result, err := usecase.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
