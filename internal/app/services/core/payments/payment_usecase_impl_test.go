package payments

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/shared/locker"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	redisRepository "clinic-booking-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryBookingRepository struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	writes   int
	markErr  error
}

func newMemoryBookingRepository(bookings ...models.Booking) *memoryBookingRepository {
	repo := &memoryBookingRepository{bookings: make(map[string]*models.Booking)}
	for i := range bookings {
		booking := bookings[i]
		repo.bookings[booking.ID.Hex()] = &booking
	}
	return repo
}

func (m *memoryBookingRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	return "", errors.New("not used")
}
func (m *memoryBookingRepository) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	return nil, nil
}
func (m *memoryBookingRepository) FindBySlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error) {
	return nil, nil
}
func (m *memoryBookingRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return nil, nil
}
func (m *memoryBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}
func (m *memoryBookingRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memoryBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	found := *booking
	return &found, nil
}

func (m *memoryBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string, paidAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markErr != nil {
		err := m.markErr
		m.markErr = nil
		return false, err
	}
	booking, ok := m.bookings[bookingID]
	if !ok || booking.Paid {
		return false, nil
	}
	booking.Paid = true
	booking.TransactionID = transactionID
	booking.PaidAt = &paidAt
	m.writes++
	return true, nil
}

func (m *memoryBookingRepository) get(bookingID string) models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.bookings[bookingID]
}

type memoryPaymentRepository struct {
	mu       sync.Mutex
	payments []models.Payment
}

func (m *memoryPaymentRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.payments {
		if existing.TransactionID == payment.TransactionID {
			return "", exceptions.NewDuplicateKeyError(constvars.MongoIndexPaymentTransaction, nil)
		}
		if existing.BookingID == payment.BookingID {
			return "", exceptions.NewDuplicateKeyError(constvars.MongoIndexPaymentBooking, nil)
		}
	}
	payment.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *payment)
	return payment.ID.Hex(), nil
}

func (m *memoryPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, payment := range m.payments {
		if payment.TransactionID == transactionID {
			found := payment
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryPaymentRepository) FindByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, payment := range m.payments {
		if payment.BookingID == bookingID {
			found := payment
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryPaymentRepository) ReplaceTransaction(ctx context.Context, paymentID primitive.ObjectID, transactionID string, amount int64, createdAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	target := -1
	for i, payment := range m.payments {
		if payment.TransactionID == transactionID && payment.ID != paymentID {
			return exceptions.NewDuplicateKeyError(constvars.MongoIndexPaymentTransaction, nil)
		}
		if payment.ID == paymentID {
			target = i
		}
	}
	if target < 0 {
		return exceptions.ErrMongoDBUpdateDocument(errors.New("payment not found"))
	}
	m.payments[target].TransactionID = transactionID
	m.payments[target].Amount = amount
	m.payments[target].CreatedAt = createdAt
	return nil
}

func (m *memoryPaymentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memoryPaymentRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payments)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.Booking
}

func (r *recordingNotifier) Notify(ctx context.Context, kind constvars.NotificationKind, booking models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if kind == constvars.NotificationKindPaymentConfirmed {
		r.events = append(r.events, booking)
	}
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type fakeGateway struct {
	amount         int64
	idempotencyKey string
	err            error
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (string, error) {
	f.amount = amount
	f.idempotencyKey = idempotencyKey
	if f.err != nil {
		return "", f.err
	}
	return "pi_123_secret_456", nil
}

type paymentFixture struct {
	usecase  *paymentUsecase
	bookings *memoryBookingRepository
	payments *memoryPaymentRepository
	notifier *recordingNotifier
	gateway  *fakeGateway
	redis    *miniredis.Miniredis
	booking  models.Booking
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	booking := models.Booking{
		ID:        primitive.NewObjectID(),
		Treatment: "Teeth Orthodontics",
		Date:      "2024-05-01",
		Slot:      "08:00 AM - 08:30 AM",
		Patient:   "ana@example.com",
		Price:     45,
	}
	bookings := newMemoryBookingRepository(booking)
	payments := &memoryPaymentRepository{}
	notifier := &recordingNotifier{}
	gateway := &fakeGateway{}
	lockService := locker.NewLockService(redisRepository.NewRedisRepository(client), zap.NewNop())

	usecase := NewPaymentUsecase(bookings, payments, lockService, gateway, notifier, nil, time.Minute, zap.NewNop()).(*paymentUsecase)
	return &paymentFixture{
		usecase:  usecase,
		bookings: bookings,
		payments: payments,
		notifier: notifier,
		gateway:  gateway,
		redis:    mr,
		booking:  booking,
	}
}

func TestPaymentUsecaseConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks the booking paid and notifies once", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()

		result, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1", Amount: 4500})
		require.NoError(t, err)

		assert.True(t, result.Paid)
		assert.Equal(t, "pi_1", result.TransactionID)
		assert.NotNil(t, result.PaidAt)
		assert.True(t, fx.bookings.get(bookingID).Paid)
		assert.Equal(t, 1, fx.payments.count())
		assert.Equal(t, int64(4500), fx.payments.payments[0].Amount)
		assert.Equal(t, fx.booking.ID, fx.payments.payments[0].BookingID)
		assert.Equal(t, 1, fx.notifier.count())
	})

	t.Run("Lock is released afterwards", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()

		_, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1"})
		require.NoError(t, err)

		assert.False(t, fx.redis.Exists(fmt.Sprintf(constvars.RedisKeyPaymentLockFormat, bookingID)))
	})

	t.Run("Replaying the same transaction changes nothing", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()

		first, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1"})
		require.NoError(t, err)
		second, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1"})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.Paid)
		assert.Equal(t, "pi_1", second.TransactionID)
		assert.Equal(t, 1, fx.payments.count())
		assert.Equal(t, 1, fx.bookings.writes)
		assert.Equal(t, 1, fx.notifier.count())
	})

	t.Run("Different transaction on a paid booking conflicts", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()

		_, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1"})
		require.NoError(t, err)

		_, err = fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_2"})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		assert.Equal(t, "pi_1", fx.bookings.get(bookingID).TransactionID)
		assert.Equal(t, 1, fx.payments.count())
		assert.Equal(t, 1, fx.notifier.count())
	})

	t.Run("Unknown booking performs no writes", func(t *testing.T) {
		fx := newPaymentFixture(t)

		_, err := fx.usecase.ConfirmPayment(ctx, primitive.NewObjectID().Hex(), &requests.ConfirmPayment{TransactionID: "pi_1"})
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
		assert.Equal(t, 0, fx.payments.count())
		assert.Equal(t, 0, fx.bookings.writes)
		assert.Equal(t, 0, fx.notifier.count())
	})

	t.Run("Transaction recorded for another booking conflicts", func(t *testing.T) {
		fx := newPaymentFixture(t)
		fx.payments.payments = append(fx.payments.payments, models.Payment{
			ID:            primitive.NewObjectID(),
			BookingID:     primitive.NewObjectID(),
			TransactionID: "pi_1",
		})

		_, err := fx.usecase.ConfirmPayment(ctx, fx.booking.ID.Hex(), &requests.ConfirmPayment{TransactionID: "pi_1"})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		assert.False(t, fx.bookings.get(fx.booking.ID.Hex()).Paid)
		assert.Equal(t, 0, fx.notifier.count())
	})

	t.Run("Payment left by an interrupted attempt is reused", func(t *testing.T) {
		fx := newPaymentFixture(t)
		fx.payments.payments = append(fx.payments.payments, models.Payment{
			ID:            primitive.NewObjectID(),
			BookingID:     fx.booking.ID,
			TransactionID: "pi_1",
		})

		result, err := fx.usecase.ConfirmPayment(ctx, fx.booking.ID.Hex(), &requests.ConfirmPayment{TransactionID: "pi_1"})
		require.NoError(t, err)
		assert.True(t, result.Paid)
		assert.Equal(t, 1, fx.payments.count())
		assert.Equal(t, 1, fx.notifier.count())
	})

	t.Run("Retry with a new transaction after a failed write keeps one payment", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()
		fx.bookings.markErr = exceptions.ErrMongoDBUpdateDocument(errors.New("primary stepped down"))

		_, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "tx1", Amount: 4500})
		require.Error(t, err)
		assert.False(t, fx.bookings.get(bookingID).Paid)
		assert.Equal(t, 0, fx.notifier.count())

		result, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "tx2", Amount: 4500})
		require.NoError(t, err)

		assert.True(t, result.Paid)
		assert.Equal(t, "tx2", fx.bookings.get(bookingID).TransactionID)
		require.Equal(t, 1, fx.payments.count())
		assert.Equal(t, "tx2", fx.payments.payments[0].TransactionID)
		assert.Equal(t, fx.booking.ID, fx.payments.payments[0].BookingID)
		assert.Equal(t, 1, fx.notifier.count())

		stale, err := fx.payments.FindByTransactionID(ctx, "tx1")
		require.NoError(t, err)
		assert.Nil(t, stale)
	})

	t.Run("Held lock rejects the confirmation", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()
		require.NoError(t, fx.redis.Set(fmt.Sprintf(constvars.RedisKeyPaymentLockFormat, bookingID), `"someone-else"`))

		_, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1"})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		assert.Equal(t, 0, fx.payments.count())
	})

	t.Run("Redis outage falls back to storage constraints", func(t *testing.T) {
		fx := newPaymentFixture(t)
		fx.redis.Close()

		result, err := fx.usecase.ConfirmPayment(ctx, fx.booking.ID.Hex(), &requests.ConfirmPayment{TransactionID: "pi_1"})
		require.NoError(t, err)
		assert.True(t, result.Paid)
		assert.Equal(t, 1, fx.notifier.count())
	})

	t.Run("Concurrent confirmations pay exactly once", func(t *testing.T) {
		fx := newPaymentFixture(t)
		bookingID := fx.booking.ID.Hex()

		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := fx.usecase.ConfirmPayment(ctx, bookingID, &requests.ConfirmPayment{TransactionID: "pi_1"})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
			}
		}
		assert.True(t, fx.bookings.get(bookingID).Paid)
		assert.Equal(t, 1, fx.payments.count())
		assert.Equal(t, 1, fx.bookings.writes)
		assert.Equal(t, 1, fx.notifier.count())
	})
}

func TestPaymentUsecaseCreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("Charges the price in minor units", func(t *testing.T) {
		fx := newPaymentFixture(t)

		result, err := fx.usecase.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{Price: 45, IdempotencyKey: "client-key"})
		require.NoError(t, err)

		assert.Equal(t, "pi_123_secret_456", result.ClientSecret)
		assert.Equal(t, int64(4500), fx.gateway.amount)
		assert.Equal(t, "client-key", fx.gateway.idempotencyKey)
	})

	t.Run("Generates an idempotency key when none is given", func(t *testing.T) {
		fx := newPaymentFixture(t)

		_, err := fx.usecase.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{Price: 10})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(fx.gateway.idempotencyKey, constvars.ResourcePayments+"-"))
	})

	t.Run("Gateway failure surfaces", func(t *testing.T) {
		fx := newPaymentFixture(t)
		fx.gateway.err = exceptions.ErrPaymentGateway(errors.New("stripe down"))

		_, err := fx.usecase.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{Price: 10})
		assert.Equal(t, constvars.StatusBadGateway, exceptions.StatusCode(err))
	})
}
