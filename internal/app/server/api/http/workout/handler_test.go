package workout

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workoutlog/internal/domain/workout"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListPage(ctx context.Context, page int) (workout.Page, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(workout.Page), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (*workout.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, candidate workout.Workout) (*workout.Workout, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, candidate workout.Workout) (*workout.Workout, error) {
	args := m.Called(ctx, id, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workout.Workout), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandler_List(t *testing.T) {
	ctx := context.Background()

	svc := new(MockService)
	svc.On("ListPage", ctx, 2).Return(workout.Page{
		Items:      []workout.Workout{{ID: "a"}},
		Page:       2,
		PageSize:   workout.PageSize,
		Total:      11,
		TotalPages: 2,
	}, nil)

	h := NewHandler(svc, nil, nil)
	out, err := h.list(ctx, &listInput{Page: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Body.Page)
	assert.Equal(t, 2, out.Body.TotalPages)
	assert.Len(t, out.Body.Items, 1)
}

func TestHandler_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Find", ctx, "abc").Return(&workout.Workout{ID: "abc", Exercise: "Run"}, nil)

		h := NewHandler(svc, nil, nil)
		out, err := h.find(ctx, &findInput{ID: "abc"})

		require.NoError(t, err)
		assert.Equal(t, "abc", out.Body.ID)
	})

	t.Run("missing id maps to 404 with the legacy body", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Find", ctx, "missing").Return(nil, workout.ErrNotFound)

		h := NewHandler(svc, nil, nil)
		_, err := h.find(ctx, &findInput{ID: "missing"})

		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.GetStatus())
		assert.Equal(t, "Not found", statusErr.Error())
	})
}

func TestHandler_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", ctx, mock.AnythingOfType("workout.Workout")).
			Return(&workout.Workout{ID: "fresh", Exercise: "Run"}, nil)

		h := NewHandler(svc, nil, nil)
		input := &createInput{}
		input.Body.Exercise = "Run"
		input.Body.Type = "Cardio"
		input.Body.Date = "2024-01-01"
		input.Body.Duration = 30

		out, err := h.create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "fresh", out.Body.ID)
	})

	t.Run("validation failure carries every message", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", ctx, mock.AnythingOfType("workout.Workout")).
			Return(nil, &workout.ValidationError{Messages: []string{
				workout.MsgDateRequired,
				workout.MsgNoActivity,
			}})

		h := NewHandler(svc, nil, nil)
		_, err := h.create(ctx, &createInput{})

		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.GetStatus())
	})
}

func TestHandler_Update(t *testing.T) {
	ctx := context.Background()

	svc := new(MockService)
	svc.On("Update", ctx, "abc", mock.AnythingOfType("workout.Workout")).
		Return(nil, workout.ErrNotFound)

	h := NewHandler(svc, nil, nil)
	_, err := h.update(ctx, &updateInput{ID: "abc"})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns ok", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", ctx, "abc").Return(nil)

		h := NewHandler(svc, nil, nil)
		out, err := h.delete(ctx, &findInput{ID: "abc"})

		require.NoError(t, err)
		assert.True(t, out.Body.OK)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", ctx, "missing").Return(workout.ErrNotFound)

		h := NewHandler(svc, nil, nil)
		_, err := h.delete(ctx, &findInput{ID: "missing"})

		var statusErr huma.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.GetStatus())
	})
}
