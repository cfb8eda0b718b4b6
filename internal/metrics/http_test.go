package metrics

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/jobs/couvreur-zingueur", "/api/jobs/{slug}"},
		{"/api/jobs/couvreur-zingueur/similar/couverture", "/api/jobs/{slug}/similar/{category}"},
		{"/api/projects/toiture-haussmannienne", "/api/projects/{slug}"},
		{"/api/projects/toiture-haussmannienne/similar/couverture", "/api/projects/{slug}/similar/{category}"},
		{"/api/services/plomberie", "/api/services/{slug}"},
		{"/api/service-details/plomberie", "/api/service-details/{slug}"},
		{"/api/projects/featured", "/api/projects/featured"},
		{"/api/jobs/apply", "/api/jobs/apply"},
		{"/api/jobs", "/api/jobs"},
		{"/api/contact", "/api/contact"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
