package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"workoutlog/internal/domain/workout"
)

// Session is the pagination-aware view-state controller: it reconciles
// server-paged list data, the derived stats cache and CRUD mutations, and
// keeps the pager consistent after each mutation. One Session per client
// context; there is no process-wide state.
type Session struct {
	api     API
	surface Surface
	log     *slog.Logger

	currentPage int
	totalPages  int
	statsCache  []workout.Workout
	activeView  View
}

func NewSession(api API, surface Surface, log *slog.Logger) *Session {
	return &Session{
		api:         api,
		surface:     surface,
		log:         log.With("component", "session"),
		currentPage: 1,
		totalPages:  1,
		activeView:  ViewList,
	}
}

func (s *Session) CurrentPage() int { return s.currentPage }

func (s *Session) TotalPages() int { return s.totalPages }

func (s *Session) ActiveView() View { return s.activeView }

// StatsCache returns the last full-dataset snapshot, possibly partial after
// a failed walk.
func (s *Session) StatsCache() []workout.Workout { return s.statsCache }

// LoadPage fetches page n and renders it. The server echo of page and
// totalPages is trusted over the requested number, so an out-of-range
// request lands wherever the server clamps it. When the stats view is
// visible the snapshot is rebuilt right away so the aggregates never go
// stale on screen.
func (s *Session) LoadPage(ctx context.Context, n int) (*workout.Page, error) {
	page, err := s.api.ListWorkouts(ctx, n)
	if err != nil {
		return nil, err
	}

	s.currentPage = page.Page
	s.totalPages = page.TotalPages
	s.surface.RenderList(page.Items)
	s.surface.SetPager(page.Page, page.TotalPages)

	if s.activeView == ViewStats {
		if err := s.refreshStats(ctx); err != nil {
			return page, err
		}
	}

	return page, nil
}

// LoadAllForStats walks every page sequentially, accumulating items in page
// order, and replaces the stats cache wholesale. The walk stops once the
// just-fetched page number reaches that response's totalPages. A failure
// mid-walk leaves the partial accumulation in place; a concurrent mutation
// during the walk can likewise produce an inconsistent snapshot. Neither is
// corrected here.
func (s *Session) LoadAllForStats(ctx context.Context) ([]workout.Workout, error) {
	s.statsCache = nil

	page := 1
	for {
		resp, err := s.api.ListWorkouts(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("stats walk at page %d: %w", page, err)
		}

		s.statsCache = append(s.statsCache, resp.Items...)

		if resp.Page >= resp.TotalPages {
			break
		}
		page = resp.Page + 1
	}

	return s.statsCache, nil
}

// ShowList switches to the list view and reloads the current page.
func (s *Session) ShowList(ctx context.Context) error {
	s.activeView = ViewList
	s.surface.Show(ViewList)
	_, err := s.LoadPage(ctx, s.currentPage)
	return err
}

// ShowStats switches to the stats view and rebuilds the snapshot.
func (s *Session) ShowStats(ctx context.Context) error {
	s.activeView = ViewStats
	s.surface.Show(ViewStats)
	return s.refreshStats(ctx)
}

func (s *Session) refreshStats(ctx context.Context) error {
	items, err := s.LoadAllForStats(ctx)
	if err != nil {
		return err
	}
	s.surface.RenderStats(workout.Summarize(items))
	return nil
}

// Save submits the form candidate: create when it has no id, update
// otherwise. Local validation failures and server rejections both land in
// the inline form error and leave the user on the form; nothing is sent to
// the API when the preflight check fails. On success the current page (not
// page one) is reloaded so the record shows up wherever the server's sort
// placed it, and the view switches to the list.
func (s *Session) Save(ctx context.Context, candidate workout.Workout) error {
	candidate.Duration = workout.ToNumber(candidate.Duration)
	candidate.Sets = workout.ToNumber(candidate.Sets)
	candidate.Reps = workout.ToNumber(candidate.Reps)
	candidate.Weight = workout.ToNumber(candidate.Weight)

	if msgs := workout.Validate(candidate); len(msgs) > 0 {
		s.surface.SetFormError(strings.Join(msgs, " "))
		return nil
	}
	s.surface.SetFormError("")

	var err error
	if candidate.ID == "" {
		_, err = s.api.CreateWorkout(ctx, candidate)
	} else {
		_, err = s.api.UpdateWorkout(ctx, candidate.ID, candidate)
	}

	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			s.surface.SetFormError(apiErr.Message)
			return nil
		}
		return err
	}

	s.surface.ClearForm()

	if _, err := s.LoadPage(ctx, s.currentPage); err != nil {
		return err
	}

	s.activeView = ViewList
	s.surface.Show(ViewList)
	return nil
}

// Remove deletes a record after explicit confirmation. The full record is
// fetched first so the prompt can describe it even when the listed row was
// rendered from stale or partial data. Deleting the last item of the last
// page steps the pager back one page instead of leaving an empty screen.
func (s *Session) Remove(ctx context.Context, id string) error {
	w, err := s.api.GetWorkout(ctx, id)
	if err != nil {
		s.alert(err)
		return err
	}

	prompt := fmt.Sprintf("Delete %s (%s) on %s?", w.Exercise, w.Type, w.Date)
	if !s.surface.Confirm(prompt) {
		s.log.Debug("delete cancelled", "id", id)
		return nil
	}

	if err := s.api.DeleteWorkout(ctx, id); err != nil {
		s.alert(err)
		return err
	}

	page, err := s.LoadPage(ctx, s.currentPage)
	if err != nil {
		s.alert(err)
		return err
	}

	if len(page.Items) == 0 && s.currentPage > 1 {
		if _, err := s.LoadPage(ctx, s.currentPage-1); err != nil {
			s.alert(err)
			return err
		}
	}

	return nil
}

// Edit fetches the full record by id and populates the form before
// switching views; listed rows may omit fields and are never trusted here.
func (s *Session) Edit(ctx context.Context, id string) error {
	w, err := s.api.GetWorkout(ctx, id)
	if err != nil {
		s.alert(err)
		return err
	}

	s.surface.SetFormError("")
	s.surface.FillForm(*w)
	s.activeView = ViewForm
	s.surface.Show(ViewForm)
	return nil
}

func (s *Session) alert(err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s.surface.Alert(apiErr.Message)
		return
	}
	s.surface.Alert(err.Error())
}
