package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batihr/backend/internal/domain"
)

func contactMux(svc *fakeSubmissions) *http.ServeMux {
	mux := http.NewServeMux()
	NewContactHandler(svc, testLogger()).RegisterRoutes(mux, noLimit)
	return mux
}

func TestContactSubmit(t *testing.T) {
	svc := &fakeSubmissions{id: "MSG-123456"}
	mux := contactMux(svc)

	body := `{"name":"Jean Dupont","email":"jean@example.com","subject":"Fuite","message":"Bonjour","cabinet":"plomberie"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Votre message a été envoyé avec succès", env.Message)
	assert.Equal(t, "MSG-123456", dataField(t, env, "messageId"))

	require.NotNil(t, svc.lastContact)
	assert.Equal(t, "plomberie", svc.lastContact.Cabinet)
}

func TestContactSubmit_MalformedJSON(t *testing.T) {
	mux := contactMux(&fakeSubmissions{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Veuillez fournir toutes les informations requises", env.Message)
}

func TestContactSubmit_ValidationError(t *testing.T) {
	svc := &fakeSubmissions{err: domain.Invalid("op", "Veuillez fournir une adresse email valide")}
	mux := contactMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"email":"bad"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Veuillez fournir une adresse email valide", env.Message)
}

func TestContactSubmit_NotificationFailure(t *testing.T) {
	// The submission was accepted; the id must survive in the 500 envelope
	svc := &fakeSubmissions{
		id:  "MSG-654321",
		err: domain.NotificationFailed("op", "Le message a été enregistré mais l'email n'a pas pu être envoyé"),
	}
	mux := contactMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Jean"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Le message a été enregistré mais l'email n'a pas pu être envoyé", env.Message)
	assert.Equal(t, "MSG-654321", dataField(t, env, "messageId"))
}

func TestContactSubmit_MethodNotAllowed(t *testing.T) {
	mux := contactMux(&fakeSubmissions{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
