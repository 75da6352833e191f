package contacts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	"github.com/m04kA/SMC-CharterService/internal/service/contacts/models"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
	"github.com/m04kA/SMC-CharterService/pkg/ptr"
)

type fakeRepo struct {
	saved []domain.ContactMessage
	err   error
}

func (f *fakeRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	m.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *m)
	return m, nil
}

func (f *fakeRepo) List(context.Context) ([]domain.ContactMessage, error) {
	return f.saved, f.err
}

type fakeNotifier struct {
	events []interface{}
	err    error
}

func (f *fakeNotifier) Publish(_ context.Context, key string, event interface{}) error {
	f.events = append(f.events, event)
	return f.err
}

func validRequest() *models.SubmitRequest {
	return &models.SubmitRequest{
		Name:    " Grace Hopper ",
		Email:   "grace@example.com",
		Subject: ptr.Ptr("Corporate event"),
		Message: "Do you host parties for 40 people?",
	}
}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	n := &fakeNotifier{err: errors.New("broker down")}
	svc := NewService(repo, n, logger.NewNop())

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Grace Hopper", resp.Name)
	require.Len(t, n.events, 1)
	assert.Equal(t, "Grace Hopper", n.events[0].(notifier.ContactEvent).Name)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.SubmitRequest)
	}{
		{"empty name", func(r *models.SubmitRequest) { r.Name = "" }},
		{"long name", func(r *models.SubmitRequest) { r.Name = strings.Repeat("a", domain.MaxNameLength+1) }},
		{"bad email", func(r *models.SubmitRequest) { r.Email = "grace" }},
		{"empty message", func(r *models.SubmitRequest) { r.Message = "   " }},
		{"long message", func(r *models.SubmitRequest) { r.Message = strings.Repeat("x", domain.MaxMessageLength+1) }},
		{"long phone", func(r *models.SubmitRequest) { r.Phone = ptr.Ptr(strings.Repeat("1", domain.MaxPhoneLength+1)) }},
		{"long subject", func(r *models.SubmitRequest) { r.Subject = ptr.Ptr(strings.Repeat("s", domain.MaxSubjectLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)
			_, err := NewService(&fakeRepo{}, &fakeNotifier{}, logger.NewNop()).Submit(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("timeout")}, &fakeNotifier{}, logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
