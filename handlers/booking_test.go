package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omm/handlers"
	"omm/middleware"
	"omm/models"
	"omm/services/booking"
)

// fakeBookingService keeps working copies in memory so handler flows can be
// exercised without Redis or the platform API.
type fakeBookingService struct {
	store map[string]models.Booking
}

func newFakeBookingService() *fakeBookingService {
	return &fakeBookingService{store: map[string]models.Booking{}}
}

func (f *fakeBookingService) Get(_ context.Context, id string) (models.Booking, error) {
	return f.Working(context.Background(), id)
}

func (f *fakeBookingService) NewDraft(_ context.Context, vehicle models.Vehicle, postalCode string) (models.Booking, error) {
	b := booking.Normalize(models.Booking{
		ID:        models.DraftIDPrefix + uuid.NewString(),
		Vehicle:   vehicle,
		Location:  models.Location{PostalCode: postalCode},
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	})
	f.store[b.ID] = b
	return b, nil
}

func (f *fakeBookingService) Save(_ context.Context, b models.Booking) (models.Booking, error) {
	b = booking.Reprice(booking.Normalize(b))
	f.store[b.ID] = b
	return b, nil
}

func (f *fakeBookingService) Delete(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

func (f *fakeBookingService) Working(_ context.Context, id string) (models.Booking, error) {
	b, ok := f.store[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("booking %s not found", id)
	}
	return b, nil
}

func (f *fakeBookingService) PutWorking(_ context.Context, b models.Booking) error {
	f.store[b.ID] = b
	return nil
}

func (f *fakeBookingService) DropWorking(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewBookingHandler(svc)
	r := gin.New()
	group := r.Group("/api/bookings", middleware.ActorMiddleware())
	group.GET("/:id", h.GetBooking)
	group.POST("/:id/jobs", h.AddJob)
	group.DELETE("/:id/jobs/:index", h.RemoveJob)
	group.PUT("/:id/mechanic", h.SetMechanic)
	return r
}

func seedBooking(t *testing.T, svc *fakeBookingService) models.Booking {
	t.Helper()
	b := booking.Normalize(models.Booking{ID: "bk1", Status: models.StatusPending})
	require.NoError(t, svc.PutWorking(context.Background(), b))
	return b
}

func doRequest(r *gin.Engine, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	var payload *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", "m1")
	if admin {
		req.Header.Set("X-Actor-Role", "admin")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddJobEndpoint(t *testing.T) {
	svc := newFakeBookingService()
	seedBooking(t, svc)
	r := newTestRouter(svc)

	body := gin.H{
		"job":   gin.H{"id": "j1", "name": "Oil change", "duration": 30},
		"price": gin.H{"price": 60, "duration": 30},
	}
	w := doRequest(r, http.MethodPost, "/api/bookings/bk1/jobs", body, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Booking models.Booking `json:"booking"`
		Quote   booking.Quote  `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Booking.Jobs, 1)
	assert.InDelta(t, 30.0, resp.Quote.ServiceSubtotal, 1e-9)

	// The working copy now carries the edit.
	stored, err := svc.Working(context.Background(), "bk1")
	require.NoError(t, err)
	assert.True(t, stored.HasJob("j1"))
}

func TestDuplicateAddJobIsConflict(t *testing.T) {
	svc := newFakeBookingService()
	seedBooking(t, svc)
	r := newTestRouter(svc)

	body := gin.H{
		"job":   gin.H{"id": "j1", "name": "Oil change", "duration": 30},
		"price": gin.H{"price": 60, "duration": 30},
	}
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/bookings/bk1/jobs", body, false).Code)

	w := doRequest(r, http.MethodPost, "/api/bookings/bk1/jobs", body, false)
	assert.Equal(t, http.StatusConflict, w.Code)

	stored, err := svc.Working(context.Background(), "bk1")
	require.NoError(t, err)
	assert.Len(t, stored.Jobs, 1)
}

func TestSetMechanicRequiresAdminRole(t *testing.T) {
	svc := newFakeBookingService()
	seedBooking(t, svc)
	r := newTestRouter(svc)

	body := gin.H{"mechanic": gin.H{"id": "m9", "name": "Riley"}}

	w := doRequest(r, http.MethodPut, "/api/bookings/bk1/mechanic", body, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodPut, "/api/bookings/bk1/mechanic", body, true)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := svc.Working(context.Background(), "bk1")
	require.NoError(t, err)
	require.NotNil(t, stored.Mechanic)
	assert.Equal(t, "m9", stored.Mechanic.ID)
}

func TestMissingActorIdentityIsUnauthorized(t *testing.T) {
	svc := newFakeBookingService()
	seedBooking(t, svc)
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bk1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
