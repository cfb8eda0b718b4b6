package domain

import "strings"

// Attachment is a file carried from an upload into an outbound notification.
// Content is read once from the multipart part so that composing and
// dispatching never have to touch the filesystem again.
type Attachment struct {
	OriginalName string // Filename as uploaded by the submitter
	StorageKey   string // Key under which the file was persisted (empty if not stored)
	ContentType  string
	Size         int64
	Content      []byte
}

// ContactSubmission is a contact-form message. It exists only for the
// duration of the request; nothing is persisted.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string // optional
	Subject string
	Message string
	Cabinet string
}

// AppointmentSubmission is an appointment request.
type AppointmentSubmission struct {
	Name            string
	Email           string
	Phone           string
	Date            string // as submitted, e.g. "2026-03-12"
	Time            string
	Reason          string // coded: information, consultation, devis, other
	PreferredMethod string // coded: in-person, video, phone
	Notes           string // optional
	Cabinet         string
}

// DevisSubmission is a quote request, optionally with supporting documents.
type DevisSubmission struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string // coded: plomberie, couverture, etancheite, ...
	Budget      string // coded bracket: less-than-10k, 10k-50k, ...
	Timeline    string // coded: urgent, 1-3-months, ...
	Description string
	Address     string
	Cabinet     string
	Files       []Attachment
}

// ApplicationSubmission is a job application. Resume is mandatory,
// CoverLetter optional.
type ApplicationSubmission struct {
	JobID       int64
	JobTitle    string // resolved from the jobs table before composing
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Message     string // optional
	Consent     bool
	Resume      *Attachment
	CoverLetter *Attachment
}

// SplitName splits a free-form "Prénom Nom" field the way the contact and
// appointment forms expect: first token is the given name, the remainder the
// family name. A single token yields an empty family name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
