package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	yachtRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/yacht"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
	"github.com/m04kA/SMC-CharterService/pkg/ptr"
)

type fakeBookings struct {
	existing []*domain.Booking
	created  *domain.Booking
	err      error
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *b
	cp.ID = 42
	f.created = &cp
	return &cp, nil
}

func (f *fakeBookings) GetOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeYachts map[int64]*domain.Yacht

func (f fakeYachts) GetByID(_ context.Context, id int64) (*domain.Yacht, error) {
	y, ok := f[id]
	if !ok {
		return nil, yachtRepo.ErrYachtNotFound
	}
	return y, nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	keys []string
	err  error
}

func (f *fakeNotifier) Publish(_ context.Context, key string, _ interface{}) error {
	f.keys = append(f.keys, key)
	return f.err
}

type fixedTime time.Time

func (t fixedTime) Now() time.Time { return time.Time(t) }

var now = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(bookings *fakeBookings, n *fakeNotifier) *UseCase {
	yachts := fakeYachts{
		1: {
			ID:            1,
			Name:          "Sea Breeze",
			GuestCapacity: 8,
			IsPublished:   true,
			PriceTiers:    []domain.PriceTier{{CharterHours: 4, RetailCents: 320000}, {CharterHours: 8, RetailCents: 560000}},
		},
		2: {ID: 2, Name: "Draft", IsPublished: false, PriceTiers: []domain.PriceTier{{CharterHours: 4, RetailCents: 1}}},
	}
	uc := NewUseCase(bookings, yachts, &fakeTx{}, n, Limits{AdvanceDays: 30, MinNoticeHours: 24}, logger.NewNop())
	uc.timeProvider = fixedTime(now)
	return uc
}

func validRequest() *Request {
	return &Request{
		YachtID:       1,
		StartAt:       time.Date(2026, 6, 5, 10, 0, 0, 0, time.UTC),
		CharterHours:  4,
		Guests:        6,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Notes:         ptr.Ptr("birthday"),
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookings{}
	n := &fakeNotifier{}
	uc := newUseCase(bookings, n)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Sea Breeze", resp.YachtName)
	assert.Equal(t, int64(320000), resp.PriceCents)
	assert.Equal(t, time.Date(2026, 6, 5, 14, 0, 0, 0, time.UTC), resp.EndAt)
	assert.Equal(t, []string{notifier.RoutingBookingCreated}, n.keys)
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	n := &fakeNotifier{err: errors.New("broker down")}
	uc := newUseCase(&fakeBookings{}, n)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(r *Request)
		existing []*domain.Booking
		wantErr  error
	}{
		{"unknown yacht", func(r *Request) { r.YachtID = 9 }, nil, ErrYachtNotFound},
		{"unpublished yacht", func(r *Request) { r.YachtID = 2 }, nil, ErrYachtNotFound},
		{"tier not offered", func(r *Request) { r.CharterHours = 6 }, nil, ErrTierNotOffered},
		{"too many guests", func(r *Request) { r.Guests = 9 }, nil, ErrTooManyGuests},
		{"bad email", func(r *Request) { r.CustomerEmail = "nope" }, nil, ErrInvalidInput},
		{"empty name", func(r *Request) { r.CustomerName = "  " }, nil, ErrInvalidInput},
		{"past date", func(r *Request) { r.StartAt = now.AddDate(0, 0, -1) }, nil, ErrInvalidDate},
		{"too far", func(r *Request) { r.StartAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC) }, nil, ErrDateTooFarInFuture},
		{"before first departure", func(r *Request) { r.StartAt = time.Date(2026, 6, 5, 7, 0, 0, 0, time.UTC) }, nil, ErrInvalidTimeSlot},
		{"off grid", func(r *Request) { r.StartAt = time.Date(2026, 6, 5, 10, 30, 0, 0, time.UTC) }, nil, ErrInvalidTimeSlot},
		{"returns too late", func(r *Request) {
			r.StartAt = time.Date(2026, 6, 5, 15, 0, 0, 0, time.UTC)
			r.CharterHours = 8
		}, nil, ErrInvalidTimeSlot},
		{"short notice", func(r *Request) { r.StartAt = time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC) }, nil, ErrTooLateToBook},
		{"overlap", func(r *Request) {}, []*domain.Booking{
			{StartAt: time.Date(2026, 6, 5, 12, 0, 0, 0, time.UTC), CharterHours: 4, Status: domain.StatusConfirmed},
		}, ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeBookings{existing: tt.existing}, &fakeNotifier{})
			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCountOverlapping(t *testing.T) {
	start := time.Date(2026, 6, 5, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	bookings := []*domain.Booking{
		{StartAt: start.Add(-4 * time.Hour), CharterHours: 4, Status: domain.StatusConfirmed}, // touches start
		{StartAt: end, CharterHours: 2, Status: domain.StatusPending},                         // touches end
		{StartAt: start.Add(time.Hour), CharterHours: 1, Status: domain.StatusCancelledByCustomer},
		{StartAt: start.Add(-time.Hour), CharterHours: 2, Status: domain.StatusPending},
	}

	assert.Equal(t, 1, countOverlapping(bookings, start, end))
}
