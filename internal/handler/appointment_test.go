package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointmentMux(svc *fakeSubmissions) *http.ServeMux {
	mux := http.NewServeMux()
	NewAppointmentHandler(svc, testLogger()).RegisterRoutes(mux, noLimit)
	return mux
}

func TestAppointmentSubmit(t *testing.T) {
	svc := &fakeSubmissions{id: "APT-123456"}
	mux := appointmentMux(svc)

	body := `{"name":"Jean Dupont","email":"jean@example.com","phone":"0612345678",` +
		`"date":"2026-03-02","time":"14:00","reason":"devis","preferredMethod":"telephone","cabinet":"couverture"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Demande de rendez-vous envoyée avec succès", env.Message)
	assert.Equal(t, "APT-123456", dataField(t, env, "appointmentId"))

	require.NotNil(t, svc.lastAppointment)
	assert.Equal(t, "telephone", svc.lastAppointment.PreferredMethod)
	assert.Equal(t, "couverture", svc.lastAppointment.Cabinet)
}

func TestAppointmentSubmit_MalformedBody(t *testing.T) {
	mux := appointmentMux(&fakeSubmissions{})

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}
