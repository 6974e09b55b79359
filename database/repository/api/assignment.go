package api

import (
	"context"
	"net/http"
	"net/url"

	"omm/models"
)

// AssignmentRepo implements repository.AssignmentRepository against the
// platform API. The booking in the response is the authoritative assignment
// state; last accepted claim wins upstream.
type AssignmentRepo struct {
	client *Client
}

func NewAssignmentRepo(c *Client) *AssignmentRepo {
	return &AssignmentRepo{client: c}
}

func (r *AssignmentRepo) SetAssignment(ctx context.Context, bookingID string, action string) (models.Booking, error) {
	var b models.Booking
	err := r.client.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/assignment",
		map[string]string{"action": action}, &b)
	return b, err
}
