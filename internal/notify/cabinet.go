// Package notify turns raw submissions into fully composed notification
// messages: a client-facing confirmation and an internal notification routed
// to the right cabinet mailbox. Composition performs no I/O.
package notify

// Cabinet keys route internal notifications to business-unit mailboxes.
const (
	CabinetPlomberie     = "plomberie"
	CabinetFumisterie    = "fumisterie"
	CabinetCouverture    = "couverture"
	CabinetAdministratif = "administratif"
)

// Directory maps cabinet keys to destination addresses with a mandatory
// default. Built once at startup from configuration, never mutated.
type Directory struct {
	defaultAddr string
	byCabinet   map[string]string
}

// DirectoryConfig holds the per-cabinet recipient overrides. Empty entries
// fall back to the default address.
type DirectoryConfig struct {
	Default       string
	Plomberie     string
	Fumisterie    string
	Couverture    string
	Administratif string
}

// NewDirectory builds an immutable cabinet directory.
func NewDirectory(cfg DirectoryConfig) *Directory {
	byCabinet := make(map[string]string, 4)
	for key, addr := range map[string]string{
		CabinetPlomberie:     cfg.Plomberie,
		CabinetFumisterie:    cfg.Fumisterie,
		CabinetCouverture:    cfg.Couverture,
		CabinetAdministratif: cfg.Administratif,
	} {
		if addr != "" {
			byCabinet[key] = addr
		}
	}
	return &Directory{
		defaultAddr: cfg.Default,
		byCabinet:   byCabinet,
	}
}

// Resolve returns the recipient address for a cabinet key. It is total: an
// unknown, unconfigured, or empty key degrades to the default address rather
// than failing.
func (d *Directory) Resolve(cabinet string) string {
	if addr, ok := d.byCabinet[cabinet]; ok {
		return addr
	}
	return d.defaultAddr
}

// Default returns the fallback address.
func (d *Directory) Default() string {
	return d.defaultAddr
}
