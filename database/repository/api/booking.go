package api

import (
	"context"
	"net/http"
	"net/url"

	"omm/models"
)

// BookingRepo implements repository.BookingRepository against the platform API.
type BookingRepo struct {
	client *Client
}

func NewBookingRepo(c *Client) *BookingRepo {
	return &BookingRepo{client: c}
}

func (r *BookingRepo) Fetch(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	err := r.client.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, &b)
	return b, err
}

func (r *BookingRepo) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	var created models.Booking
	err := r.client.do(ctx, http.MethodPost, "/bookings", b, &created)
	return created, err
}

func (r *BookingRepo) Save(ctx context.Context, b models.Booking) (models.Booking, error) {
	var saved models.Booking
	err := r.client.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(b.ID), b, &saved)
	return saved, err
}

func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil)
}
