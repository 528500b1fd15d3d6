package workout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service implements the server-side business logic for workout records:
// normalization, validation, paging and CRUD against the repository.
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	ListPage(ctx context.Context, page int) (Page, error)
	Find(ctx context.Context, id string) (*Workout, error)
	Create(ctx context.Context, candidate Workout) (*Workout, error)
	Update(ctx context.Context, id string, candidate Workout) (*Workout, error)
	Delete(ctx context.Context, id string) error
}

// NewService creates a new workout service
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "workout_service"),
	}
}

// ListPage returns one page of records. An out-of-range page number is
// clamped into [1, totalPages], never rejected.
func (s *Service) ListPage(ctx context.Context, page int) (Page, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list workouts", "error", err)
		return Page{}, fmt.Errorf("list workouts: %w", err)
	}

	total := len(items)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}

	pageItems := items[start:end]
	if pageItems == nil {
		pageItems = []Workout{}
	}

	return Page{
		Items:      pageItems,
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Find returns a single record by id
func (s *Service) Find(ctx context.Context, id string) (*Workout, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find workout", "id", id, "error", err)
		return nil, fmt.Errorf("find workout: %w", err)
	}

	return w, nil
}

// Create validates the candidate and stores it under a fresh id.
func (s *Service) Create(ctx context.Context, candidate Workout) (*Workout, error) {
	Normalize(&candidate)
	if msgs := ValidateStrict(candidate); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	candidate.ID = uuid.NewString()

	if err := s.repo.Create(ctx, &candidate); err != nil {
		s.log.Error("failed to create workout", "error", err)
		return nil, fmt.Errorf("create workout: %w", err)
	}

	s.log.Info("workout created", "id", candidate.ID, "type", candidate.Type)
	return &candidate, nil
}

// Update validates the candidate and replaces the record with the given id.
// Existence is checked before validation so a missing id reports 404, not a
// validation failure.
func (s *Service) Update(ctx context.Context, id string, candidate Workout) (*Workout, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get workout for update: %w", err)
	}

	Normalize(&candidate)
	if msgs := ValidateStrict(candidate); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	candidate.ID = id

	if err := s.repo.Update(ctx, &candidate); err != nil {
		s.log.Error("failed to update workout", "id", id, "error", err)
		return nil, fmt.Errorf("update workout: %w", err)
	}

	s.log.Info("workout updated", "id", id)
	return &candidate, nil
}

// Delete permanently removes a record
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete workout", "id", id, "error", err)
		return fmt.Errorf("delete workout: %w", err)
	}

	s.log.Info("workout deleted", "id", id)
	return nil
}
