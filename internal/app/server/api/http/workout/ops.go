package workout

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "workouts-list",
		Method:      http.MethodGet,
		Path:        "/api/workouts",
		Summary:     "One page of workout records",
		Description: "Returns a fixed-size page, newest date first. The page number is clamped into range, never rejected.",
		Tags:        []string{"workouts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "workouts-find",
		Method:      http.MethodGet,
		Path:        "/api/workouts/{id}",
		Summary:     "Get a workout record",
		Tags:        []string{"workouts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "workouts-create",
		Method:        http.MethodPost,
		Path:          "/api/workouts",
		Summary:       "Create a workout record",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"workouts"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "workouts-update",
		Method:      http.MethodPut,
		Path:        "/api/workouts/{id}",
		Summary:     "Update a workout record",
		Tags:        []string{"workouts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "workouts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/workouts/{id}",
		Summary:     "Delete a workout record",
		Tags:        []string{"workouts"},
		Middlewares: h.middleware,
	}
}
