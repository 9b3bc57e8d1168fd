package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrec/internal/db"
	"travelrec/internal/models"
)

type fakeContactStore struct {
	messages  []models.ContactMessage
	lastLimit int
	err       error
}

func (f *fakeContactStore) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.messages) {
		return f.messages[:limit], nil
	}
	return f.messages, nil
}

func (f *fakeContactStore) GetContactMessage(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	for i := range f.messages {
		if f.messages[i].ID == id {
			return &f.messages[i], nil
		}
	}
	return nil, db.ErrContactMessageNotFound
}

func newContactApp(store ContactLister) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(store)
	app.Get("/contact", h.List)
	app.Get("/contact/:id", h.Get)
	return app
}

func TestContactList(t *testing.T) {
	store := &fakeContactStore{messages: []models.ContactMessage{
		{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", Message: "Hi"},
		{ID: uuid.New(), Name: "Ben", Email: "ben@example.com", Message: "Hello"},
	}}
	app := newContactApp(store)

	tests := []struct {
		name      string
		target    string
		wantLimit int
		wantCount int
	}{
		{name: "default limit", target: "/contact", wantLimit: 50, wantCount: 2},
		{name: "explicit limit", target: "/contact?limit=1", wantLimit: 1, wantCount: 1},
		{name: "limit clamped", target: "/contact?limit=999", wantLimit: 200, wantCount: 2},
		{name: "invalid limit", target: "/contact?limit=abc", wantLimit: 50, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body struct {
				Status string                  `json:"status"`
				Data   []models.ContactMessage `json:"data"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "ok", body.Status)
			assert.Len(t, body.Data, tt.wantCount)
			assert.Equal(t, tt.wantLimit, store.lastLimit)
		})
	}
}

func TestContactListError(t *testing.T) {
	app := newContactApp(&fakeContactStore{err: errors.New("db down")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestContactGet(t *testing.T) {
	msg := models.ContactMessage{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", Message: "Hi"}
	app := newContactApp(&fakeContactStore{messages: []models.ContactMessage{msg}})

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "found", target: "/contact/" + msg.ID.String(), want: http.StatusOK},
		{name: "not found", target: "/contact/" + uuid.NewString(), want: http.StatusNotFound},
		{name: "bad id", target: "/contact/not-a-uuid", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
