package client

import (
	"workoutlog/internal/domain/workout"
)

// View names the three screens the client can show.
type View string

const (
	ViewList  View = "list"
	ViewForm  View = "form"
	ViewStats View = "stats"
)

// Surface is the rendering contract the session controller talks to. The
// controller never touches widgets directly; anything that can show a list,
// a form and a stats panel can implement this.
type Surface interface {
	// RenderList displays one page of records in the server's order.
	RenderList(items []workout.Workout)
	// SetPager updates the current/total page indicator.
	SetPager(current, total int)
	// Show switches the visible view.
	Show(view View)

	// FillForm populates the form fields from a record.
	FillForm(w workout.Workout)
	// ReadForm returns the current form field values as a candidate record.
	ReadForm() workout.Workout
	// ClearForm resets all form fields.
	ClearForm()
	// SetFormError sets the inline form error text; empty clears it.
	SetFormError(msg string)

	// RenderStats displays the aggregate panel.
	RenderStats(stats workout.Stats)

	// Confirm asks the user a yes/no question and blocks for the answer.
	Confirm(prompt string) bool
	// Alert shows a blocking error message.
	Alert(msg string)
}
