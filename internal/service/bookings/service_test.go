package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	bookingRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CharterService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
	"github.com/m04kA/SMC-CharterService/pkg/ptr"
)

const ref = "6f1c1d0e-3f5a-4a53-9d1b-2b8a8f4f9c10"

type fakeRepo struct {
	bookings  map[int64]*domain.Booking
	cancelled map[int64]domain.BookingStatus
	updated   map[int64]domain.BookingStatus
	filter    domain.BookingsFilter
	listErr   error
}

func newFakeRepo(status domain.BookingStatus) *fakeRepo {
	return &fakeRepo{
		bookings: map[int64]*domain.Booking{
			7: {
				ID:            7,
				Reference:     ref,
				YachtID:       1,
				YachtName:     "Sea Breeze",
				StartAt:       time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
				CharterHours:  4,
				Status:        status,
				CustomerEmail: "ada@example.com",
			},
		},
		cancelled: map[int64]domain.BookingStatus{},
		updated:   map[int64]domain.BookingStatus{},
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	for id, b := range f.bookings {
		if b.Reference == reference {
			return f.GetByID(ctx, id)
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*domain.Booking{f.bookings[7]}, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updated[id] = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, _ *string) error {
	f.cancelled[id] = status
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fakeNotifier struct{ keys []string }

func (f *fakeNotifier) Publish(_ context.Context, key string, _ interface{}) error {
	f.keys = append(f.keys, key)
	return nil
}

func TestGetByReference(t *testing.T) {
	svc := NewService(newFakeRepo(domain.StatusPending), fakeTx{}, &fakeNotifier{}, logger.NewNop())

	resp, err := svc.GetByReference(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "Sea Breeze", resp.YachtName)
	assert.Equal(t, time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC), resp.EndAt)

	_, err = svc.GetByReference(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByReference(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		email   string
		wantErr error
	}{
		{"pending", domain.StatusPending, "ada@example.com", nil},
		{"confirmed, email case differs", domain.StatusConfirmed, " ADA@example.com", nil},
		{"wrong email", domain.StatusPending, "eve@example.com", ErrAccessDenied},
		{"already cancelled", domain.StatusCancelledByBroker, "ada@example.com", ErrCannotCancel},
		{"completed", domain.StatusCompleted, "ada@example.com", ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(tt.status)
			n := &fakeNotifier{}
			svc := NewService(repo, fakeTx{}, n, logger.NewNop())

			resp, err := svc.Cancel(context.Background(), ref, &models.CancelBookingRequest{
				Email:              tt.email,
				CancellationReason: ptr.Ptr("weather"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.cancelled)
				assert.Empty(t, n.keys)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusCancelledByCustomer), resp.Status)
			assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelled[7])
			assert.Equal(t, []string{notifier.RoutingBookingCancelled}, n.keys)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		from        domain.BookingStatus
		to          string
		wantErr     error
		wantCancel  bool
		wantUpdated bool
	}{
		{"confirm pending", domain.StatusPending, "confirmed", nil, false, true},
		{"broker cancels", domain.StatusConfirmed, "cancelled_by_broker", nil, true, false},
		{"complete confirmed", domain.StatusConfirmed, "completed", nil, false, true},
		{"pending cannot complete", domain.StatusPending, "completed", ErrInvalidTransition, false, false},
		{"cancelled is final", domain.StatusCancelledByCustomer, "confirmed", ErrInvalidTransition, false, false},
		{"unknown status", domain.StatusPending, "sunk", ErrInvalidInput, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(tt.from)
			n := &fakeNotifier{}
			svc := NewService(repo, fakeTx{}, n, logger.NewNop())

			resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.to})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, n.keys)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			_, cancelled := repo.cancelled[7]
			_, updated := repo.updated[7]
			assert.Equal(t, tt.wantCancel, cancelled)
			assert.Equal(t, tt.wantUpdated, updated)
			assert.Equal(t, []string{notifier.RoutingBookingStatusChanged}, n.keys)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(domain.StatusPending), fakeTx{}, &fakeNotifier{}, logger.NewNop())

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	repo := newFakeRepo(domain.StatusPending)
	svc := NewService(repo, fakeTx{}, &fakeNotifier{}, logger.NewNop())

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		YachtID: ptr.Ptr(int64(1)),
		Status:  ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.filter.Status)
	assert.Equal(t, domain.StatusPending, *repo.filter.Status)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	start := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err = svc.List(context.Background(), &models.ListBookingsRequest{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("timeout")
	_, err = svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
