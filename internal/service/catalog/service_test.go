package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeFieldRepo struct {
	fields map[int64]*domain.Field
	err    error
	calls  int
}

func (f *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	field, ok := f.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return field, nil
}

func (f *fakeFieldRepo) List(_ context.Context, activeOnly bool) ([]*domain.Field, error) {
	out := make([]*domain.Field, 0)
	for _, field := range f.fields {
		if activeOnly && !field.IsActive {
			continue
		}
		out = append(out, field)
	}
	return out, f.err
}

func (f *fakeFieldRepo) Create(_ context.Context, field *domain.Field) (*domain.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	field.ID = int64(len(f.fields) + 1)
	f.fields[field.ID] = field
	return field, nil
}

func (f *fakeFieldRepo) Update(_ context.Context, field *domain.Field) (*domain.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.fields[field.ID]; !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	stored := *field
	f.fields[field.ID] = &stored
	return &stored, nil
}

func (f *fakeFieldRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.fields[id]; !ok {
		return fieldRepo.ErrFieldNotFound
	}
	delete(f.fields, id)
	return nil
}

func TestGetField_CachesHits(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1, Name: "Поле 1", IsActive: true}}}
	svc := NewService(repo, time.Minute, logger.Discard())

	for i := 0; i < 3; i++ {
		field, err := svc.GetField(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Поле 1", field.Name)
	}

	assert.Equal(t, 1, repo.calls)

	svc.Invalidate(1)
	_, err := svc.GetField(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestGetField_NotFoundIsNotCached(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{}}
	svc := NewService(repo, time.Minute, logger.Discard())

	_, err := svc.GetField(context.Background(), 5)
	assert.ErrorIs(t, err, ErrFieldNotFound)

	repo.fields[5] = &domain.Field{ID: 5}
	field, err := svc.GetField(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), field.ID)
}

func TestGetField_NoCacheWhenTTLDisabled(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1}}}
	svc := NewService(repo, 0, logger.Discard())

	_, _ = svc.GetField(context.Background(), 1)
	_, _ = svc.GetField(context.Background(), 1)

	assert.Equal(t, 2, repo.calls)
}

func TestGetField_RepositoryError(t *testing.T) {
	repo := &fakeFieldRepo{err: errors.New("connection reset")}
	svc := NewService(repo, time.Minute, logger.Discard())

	_, err := svc.GetField(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListFields(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{
		1: {ID: 1, IsActive: true},
		2: {ID: 2, IsActive: false},
	}}
	svc := NewService(repo, time.Minute, logger.Discard())

	resp, err := svc.ListFields(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, int64(1), resp.Fields[0].ID)
}

func TestCreateField(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{}}
	svc := NewService(repo, time.Minute, logger.Discard())

	resp, err := svc.CreateField(context.Background(), &models.FieldRequest{
		Name:       "  Главное поле ",
		FieldType:  "full",
		HourlyRate: 200,
	}, "staff-1")

	require.NoError(t, err)
	assert.Equal(t, "Главное поле", resp.Name)
	assert.True(t, resp.IsActive, "new fields are active by default")
}

func TestCreateField_Validation(t *testing.T) {
	svc := NewService(&fakeFieldRepo{fields: map[int64]*domain.Field{}}, time.Minute, logger.Discard())
	zero := 0

	tests := []struct {
		name string
		req  *models.FieldRequest
	}{
		{name: "nil request", req: nil},
		{name: "blank name", req: &models.FieldRequest{Name: "  ", FieldType: "full"}},
		{name: "missing type", req: &models.FieldRequest{Name: "A"}},
		{name: "zero capacity", req: &models.FieldRequest{Name: "A", FieldType: "full", MaxPlayers: &zero}},
		{name: "negative rate", req: &models.FieldRequest{Name: "A", FieldType: "full", HourlyRate: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateField(context.Background(), tt.req, "staff-1")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateField_InvalidatesCache(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1, Name: "Поле 1", IsActive: true}}}
	svc := NewService(repo, time.Minute, logger.Discard())

	_, err := svc.GetField(context.Background(), 1)
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateField(context.Background(), 1, &models.FieldRequest{
		Name:      "Поле 1",
		FieldType: "full",
		IsActive:  &inactive,
	})
	require.NoError(t, err)

	field, err := svc.GetField(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, field.IsActive, "cached field must not outlive an update")
}

func TestUpdateField_NotFound(t *testing.T) {
	svc := NewService(&fakeFieldRepo{fields: map[int64]*domain.Field{}}, time.Minute, logger.Discard())

	_, err := svc.UpdateField(context.Background(), 7, &models.FieldRequest{Name: "A", FieldType: "full"})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestDeleteField(t *testing.T) {
	repo := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1, IsActive: true}}}
	svc := NewService(repo, time.Minute, logger.Discard())

	_, err := svc.GetField(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteField(context.Background(), 1, "staff-1"))

	_, err = svc.GetField(context.Background(), 1)
	assert.ErrorIs(t, err, ErrFieldNotFound, "deleted field must not be served from cache")
}

func TestDeleteField_InUse(t *testing.T) {
	repo := &fakeFieldRepo{err: fieldRepo.ErrFieldInUse}
	svc := NewService(repo, time.Minute, logger.Discard())

	err := svc.DeleteField(context.Background(), 1, "staff-1")

	assert.ErrorIs(t, err, ErrFieldInUse)
}
