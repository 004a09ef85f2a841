package doctors

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryDoctorRepository struct {
	doctors []models.Doctor
}

func (m *memoryDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (string, error) {
	for _, existing := range m.doctors {
		if existing.Email == doctor.Email {
			return "", exceptions.NewDuplicateKeyError(constvars.MongoIndexDoctorEmail, nil)
		}
	}
	doctor.ID = primitive.NewObjectID()
	m.doctors = append(m.doctors, *doctor)
	return doctor.ID.Hex(), nil
}

func (m *memoryDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), m.doctors...), nil
}

func (m *memoryDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	for _, doctor := range m.doctors {
		if doctor.Email == email {
			found := doctor
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryDoctorRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	for i, doctor := range m.doctors {
		if doctor.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryDoctorRepository) EnsureIndexes(ctx context.Context) error { return nil }

func TestDoctorUsecase(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateDoctor{Name: "Dr. Rahim", Email: "rahim@example.com", Specialty: "Teeth Orthodontics"}

	t.Run("Create then list", func(t *testing.T) {
		repo := &memoryDoctorRepository{}
		usecase := NewDoctorUsecase(repo, zap.NewNop())

		created, err := usecase.CreateDoctor(ctx, request)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		doctors, err := usecase.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "rahim@example.com", doctors[0].Email)
	})

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		repo := &memoryDoctorRepository{}
		usecase := NewDoctorUsecase(repo, zap.NewNop())

		_, err := usecase.CreateDoctor(ctx, request)
		require.NoError(t, err)
		_, err = usecase.CreateDoctor(ctx, request)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	})

	t.Run("Delete", func(t *testing.T) {
		repo := &memoryDoctorRepository{}
		usecase := NewDoctorUsecase(repo, zap.NewNop())
		_, err := usecase.CreateDoctor(ctx, request)
		require.NoError(t, err)

		require.NoError(t, usecase.DeleteByEmail(ctx, "rahim@example.com"))
		assert.Empty(t, repo.doctors)

		err = usecase.DeleteByEmail(ctx, "rahim@example.com")
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	})

	t.Run("Portrait must be a small png or jpeg data uri", func(t *testing.T) {
		repo := &memoryDoctorRepository{}
		usecase := NewDoctorUsecase(repo, zap.NewNop())

		withGif := *request
		withGif.Img = "data:image/gif;base64,R0lGODlh"
		_, err := usecase.CreateDoctor(ctx, &withGif)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
		assert.Empty(t, repo.doctors)

		withPng := *request
		withPng.Img = "data:image/png;base64,iVBORw0KGgo="
		created, err := usecase.CreateDoctor(ctx, &withPng)
		require.NoError(t, err)
		assert.Equal(t, withPng.Img, created.Img)
	})
}
