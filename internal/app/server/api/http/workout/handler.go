package workout

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"workoutlog/internal/domain/workout"
)

type Handler struct {
	service    workout.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service workout.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	page, err := h.service.ListPage(ctx, input.Page)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: page}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*workoutOutput, error) {
	w, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &workoutOutput{Body: *w}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createdOutput, error) {
	created, err := h.service.Create(ctx, input.Body.toWorkout())
	if err != nil {
		return nil, mapError(err)
	}

	return &createdOutput{Body: *created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*workoutOutput, error) {
	updated, err := h.service.Update(ctx, input.ID, input.Body.toWorkout())
	if err != nil {
		return nil, mapError(err)
	}

	return &workoutOutput{Body: *updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &deleteOutput{Body: deleteResponse{OK: true}}, nil
}

// mapError translates domain errors into the wire statuses the old API
// used: 400 with the message list for validation, 404 for a missing id.
func mapError(err error) error {
	var vErr *workout.ValidationError
	if errors.As(err, &vErr) {
		details := make([]error, len(vErr.Messages))
		for i, msg := range vErr.Messages {
			details[i] = errors.New(msg)
		}
		return huma.Error400BadRequest("validation failed", details...)
	}

	if errors.Is(err, workout.ErrNotFound) {
		return huma.Error404NotFound("Not found")
	}

	return err
}
