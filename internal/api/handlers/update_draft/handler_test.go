package update_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
	"github.com/corypride/pictureMePerfect360/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	lastID  string
	lastReq draftService.UpdateRequest
	view    *draftService.View
	err     error
}

func (s *fakeService) Update(ctx context.Context, id string, req draftService.UpdateRequest) (*draftService.View, error) {
	s.lastID = id
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func doPatch(t *testing.T, svc *fakeService, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/drafts/{draftId}", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/drafts/d1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_DateChangeClearsTime(t *testing.T) {
	day := time.Date(2024, time.September, 11, 0, 0, 0, 0, time.UTC)
	svc := &fakeService{view: &draftService.View{
		Draft: &domain.BookingDraft{
			ID:        "d1",
			Name:      "Jordan Smith",
			EventDate: &day,
		},
		AvailableSlots: []domain.TimeSlot{"09:00 AM - 11:00 AM"},
		TimeCleared:    true,
	}}

	rec := doPatch(t, svc, `{"eventDate":"2024-09-11"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "d1", svc.lastID)
	require.NotNil(t, svc.lastReq.EventDate)
	assert.True(t, svc.lastReq.EventDate.Equal(day))

	var resp DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.TimeCleared)
	assert.Nil(t, resp.EventTime)
	require.NotNil(t, resp.EventDate)
	assert.Equal(t, "2024-09-11", *resp.EventDate)
	assert.Equal(t, []string{"09:00 AM - 11:00 AM"}, resp.AvailableSlots)
}

func TestHandle_FieldsPassedThrough(t *testing.T) {
	svc := &fakeService{view: &draftService.View{
		Draft:          &domain.BookingDraft{ID: "d1", Name: "Jo", Email: "jo@example.com"},
		AvailableSlots: domain.SlotCatalog(),
	}}

	rec := doPatch(t, svc, `{"name":"Jo","email":"jo@example.com","eventTime":"11:00 AM - 01:00 PM"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.lastReq.Name)
	assert.Equal(t, "Jo", *svc.lastReq.Name)
	require.NotNil(t, svc.lastReq.EventTime)
	assert.Equal(t, domain.TimeSlot("11:00 AM - 01:00 PM"), *svc.lastReq.EventTime)
	assert.Nil(t, svc.lastReq.EventDate)
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"malformed json", `{"name":`, nil, http.StatusBadRequest},
		{"unknown field", `{"bogus":true}`, nil, http.StatusBadRequest},
		{"bad date format", `{"eventDate":"09/11/2024"}`, nil, http.StatusBadRequest},
		{"draft not found", `{"name":"Jo"}`, draftService.ErrDraftNotFound, http.StatusNotFound},
		{"invalid slot", `{"eventTime":"bogus"}`, draftService.ErrInvalidSlot, http.StatusBadRequest},
		{"slot taken", `{"eventTime":"09:00 AM - 11:00 AM"}`, draftService.ErrSlotUnavailable, http.StatusConflict},
		{"past date", `{"eventDate":"2020-01-01"}`, draftService.ErrDateNotBookable, http.StatusBadRequest},
		{"internal error", `{"name":"Jo"}`, draftService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{err: tc.serviceErr}
			rec := doPatch(t, svc, tc.body)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandle_NullsKeptOut(t *testing.T) {
	svc := &fakeService{view: &draftService.View{
		Draft:          &domain.BookingDraft{ID: "d1", EventTime: ptr.Ptr(domain.TimeSlot("09:00 AM - 11:00 AM"))},
		AvailableSlots: domain.SlotCatalog(),
	}}

	rec := doPatch(t, svc, `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.EventDate)
	require.NotNil(t, resp.EventTime)
	assert.Equal(t, "09:00 AM - 11:00 AM", *resp.EventTime)
}
