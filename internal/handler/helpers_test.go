package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/batihr/backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// noLimit stands in for the rate limit wrapper.
func noLimit(next http.Handler) http.Handler { return next }

// fakeSubmissions returns a fixed tracking id or error and records the last
// submission it received.
type fakeSubmissions struct {
	id  string
	err error

	lastContact     *domain.ContactSubmission
	lastAppointment *domain.AppointmentSubmission
	lastDevis       *domain.DevisSubmission
	lastApplication *domain.ApplicationSubmission
}

func (f *fakeSubmissions) SubmitContact(ctx context.Context, s domain.ContactSubmission) (string, error) {
	f.lastContact = &s
	return f.id, f.err
}

func (f *fakeSubmissions) SubmitAppointment(ctx context.Context, s domain.AppointmentSubmission) (string, error) {
	f.lastAppointment = &s
	return f.id, f.err
}

func (f *fakeSubmissions) SubmitDevis(ctx context.Context, s domain.DevisSubmission) (string, error) {
	f.lastDevis = &s
	return f.id, f.err
}

func (f *fakeSubmissions) SubmitApplication(ctx context.Context, s domain.ApplicationSubmission) (string, error) {
	f.lastApplication = &s
	return f.id, f.err
}

// fakeJobs serves a fixed set of offers.
type fakeJobs struct {
	jobs []domain.Job
}

func (f *fakeJobs) List(ctx context.Context, category string) ([]domain.Job, error) {
	if category == "" {
		return f.jobs, nil
	}
	var out []domain.Job
	for _, j := range f.jobs {
		if j.Category == category {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobs) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	for _, j := range f.jobs {
		if j.Slug == slug {
			return &j, nil
		}
	}
	return nil, domain.NotFound("fakeJobs.GetBySlug", "Offre d'emploi non trouvée")
}

func (f *fakeJobs) ListSimilar(ctx context.Context, category, excludeSlug string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range f.jobs {
		if j.Category == category && j.Slug != excludeSlug {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobs) Create(ctx context.Context, params domain.CreateJobParams) (*domain.Job, error) {
	return nil, nil
}

func (f *fakeJobs) Update(ctx context.Context, params domain.UpdateJobParams) error { return nil }

func (f *fakeJobs) Delete(ctx context.Context, id int64) error { return nil }

// decodeEnvelope parses a recorded response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

// dataField digs one key out of the envelope's data object.
func dataField(t *testing.T, env Envelope, key string) string {
	t.Helper()
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	val, _ := data[key].(string)
	return val
}
