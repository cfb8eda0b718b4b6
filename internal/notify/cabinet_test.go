package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectory_Resolve(t *testing.T) {
	dir := NewDirectory(DirectoryConfig{
		Default:       "contact@batihr.fr",
		Plomberie:     "plomberie@batihr.fr",
		Couverture:    "couverture@batihr.fr",
		Administratif: "admin@batihr.fr",
		// Fumisterie deliberately unset
	})

	tests := []struct {
		name    string
		cabinet string
		want    string
	}{
		{"configured cabinet", CabinetPlomberie, "plomberie@batihr.fr"},
		{"another configured cabinet", CabinetCouverture, "couverture@batihr.fr"},
		{"administratif", CabinetAdministratif, "admin@batihr.fr"},
		{"unconfigured cabinet falls back", CabinetFumisterie, "contact@batihr.fr"},
		{"unknown key falls back", "menuiserie", "contact@batihr.fr"},
		{"empty key falls back", "", "contact@batihr.fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dir.Resolve(tt.cabinet))
		})
	}
}

func TestDirectory_Default(t *testing.T) {
	dir := NewDirectory(DirectoryConfig{Default: "contact@batihr.fr"})
	assert.Equal(t, "contact@batihr.fr", dir.Default())
}
