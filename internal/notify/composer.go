package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/email"
)

//go:embed templates/*.html
var templateFS embed.FS

// Composer renders the two messages produced by every submission: the client
// confirmation and the internal notification. It holds only immutable state
// (directory, templates, sender name) and is safe for concurrent use.
type Composer struct {
	directory *Directory
	fromName  string
	templates *template.Template
}

// NewComposer parses the embedded templates and returns a ready composer.
func NewComposer(directory *Directory, fromName string) (*Composer, error) {
	if fromName == "" {
		fromName = email.DefaultFromName
	}
	tmpl, err := template.New("notify").Funcs(template.FuncMap{
		"nl2br": nl2br,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse notification templates: %w", err)
	}
	return &Composer{
		directory: directory,
		fromName:  fromName,
		templates: tmpl,
	}, nil
}

// =============================================================================
// Contact
// =============================================================================

// ContactConfirmation is addressed to the submitter.
func (c *Composer) ContactConfirmation(s domain.ContactSubmission, messageID string) (email.Message, error) {
	prenom, nom := domain.SplitName(s.Name)
	htmlBody, err := c.render("contact_confirmation.html", map[string]interface{}{
		"Prenom":    prenom,
		"Nom":       nom,
		"MessageID": messageID,
		"Subject":   s.Subject,
		"Cabinet":   CabinetLabel(s.Cabinet),
		"FromName":  c.fromName,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Cher(e) %s %s,

Nous avons bien reçu votre message (Référence: %s) concernant "%s" pour notre cabinet de %s.

Notre équipe va l'examiner et vous répondra dans les plus brefs délais.

Cordialement,
L'équipe %s
`, prenom, nom, messageID, s.Subject, CabinetLabel(s.Cabinet), c.fromName)

	return email.Message{
		To:       s.Email,
		Subject:  fmt.Sprintf("Confirmation de votre message - %s", c.fromName),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// ContactNotification is addressed to the cabinet-resolved recipient.
func (c *Composer) ContactNotification(s domain.ContactSubmission, messageID string) (email.Message, error) {
	prenom, nom := domain.SplitName(s.Name)
	htmlBody, err := c.render("contact_notification.html", map[string]interface{}{
		"MessageID": messageID,
		"Cabinet":   CabinetLabel(s.Cabinet),
		"Prenom":    prenom,
		"Nom":       nom,
		"Email":     s.Email,
		"Telephone": Optional(s.Phone),
		"Sujet":     s.Subject,
		"Message":   s.Message,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Nouveau message de contact

Référence: %s
Cabinet concerné: %s
Nom: %s %s
Email: %s
Téléphone: %s
Sujet: %s

%s
`, messageID, CabinetLabel(s.Cabinet), prenom, nom, s.Email, Optional(s.Phone), s.Subject, s.Message)

	return email.Message{
		To:       c.directory.Resolve(s.Cabinet),
		Subject:  fmt.Sprintf("Nouveau message de contact: %s - Cabinet %s", messageID, CabinetLabel(s.Cabinet)),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// =============================================================================
// Appointment
// =============================================================================

// AppointmentConfirmation is addressed to the submitter.
func (c *Composer) AppointmentConfirmation(s domain.AppointmentSubmission, appointmentID string) (email.Message, error) {
	prenom, nom := domain.SplitName(s.Name)
	htmlBody, err := c.render("appointment_confirmation.html", map[string]interface{}{
		"Prenom":        prenom,
		"Nom":           nom,
		"AppointmentID": appointmentID,
		"Date":          FormatDateFR(s.Date),
		"Heure":         s.Time,
		"Cabinet":       CabinetLabel(s.Cabinet),
		"Motif":         ReasonLabel(s.Reason),
		"Mode":          MethodLabel(s.PreferredMethod),
		"FromName":      c.fromName,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Bonjour %s %s,

Nous avons bien reçu votre demande de rendez-vous (référence: %s).

Date: %s
Heure: %s
Cabinet: %s
Motif: %s
Mode: %s

Notre équipe confirmera ce rendez-vous dans les plus brefs délais.

Cordialement,
L'équipe %s
`, prenom, nom, appointmentID, FormatDateFR(s.Date), s.Time, CabinetLabel(s.Cabinet),
		ReasonLabel(s.Reason), MethodLabel(s.PreferredMethod), c.fromName)

	return email.Message{
		To:       s.Email,
		Subject:  fmt.Sprintf("Confirmation de votre rendez-vous #%s", appointmentID),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// AppointmentNotification is addressed to the cabinet-resolved recipient.
func (c *Composer) AppointmentNotification(s domain.AppointmentSubmission, appointmentID string) (email.Message, error) {
	prenom, nom := domain.SplitName(s.Name)
	htmlBody, err := c.render("appointment_notification.html", map[string]interface{}{
		"AppointmentID": appointmentID,
		"Prenom":        prenom,
		"Nom":           nom,
		"Email":         s.Email,
		"Telephone":     s.Phone,
		"Cabinet":       CabinetLabel(s.Cabinet),
		"Date":          FormatDateFR(s.Date),
		"Heure":         s.Time,
		"Motif":         ReasonLabel(s.Reason),
		"Mode":          MethodLabel(s.PreferredMethod),
		"Notes":         s.Notes,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Nouvelle demande de rendez-vous

Référence: %s
Client: %s %s
Email: %s
Téléphone: %s
Cabinet concerné: %s
Date: %s
Heure: %s
Motif: %s
Mode: %s
Notes: %s
`, appointmentID, prenom, nom, s.Email, s.Phone, CabinetLabel(s.Cabinet),
		FormatDateFR(s.Date), s.Time, ReasonLabel(s.Reason), MethodLabel(s.PreferredMethod), Optional(s.Notes))

	return email.Message{
		To:       c.directory.Resolve(s.Cabinet),
		Subject:  fmt.Sprintf("Nouvelle demande de rendez-vous #%s", appointmentID),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// =============================================================================
// Devis
// =============================================================================

// DevisConfirmation is addressed to the submitter.
func (c *Composer) DevisConfirmation(s domain.DevisSubmission, devisID string) (email.Message, error) {
	prenom, nom := domain.SplitName(s.Name)
	htmlBody, err := c.render("devis_confirmation.html", map[string]interface{}{
		"Prenom":      prenom,
		"Nom":         nom,
		"DevisID":     devisID,
		"ProjectType": ProjectTypeLabel(s.ProjectType),
		"FromName":    c.fromName,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Bonjour %s %s,

Nous avons bien reçu votre demande de devis (référence: %s) pour votre projet de %s.

Notre équipe va étudier votre projet et vous contactera dans les 48 heures pour discuter des détails et vous proposer un devis personnalisé.

Cordialement,
L'équipe %s
`, prenom, nom, devisID, ProjectTypeLabel(s.ProjectType), c.fromName)

	return email.Message{
		To:       s.Email,
		Subject:  fmt.Sprintf("Confirmation de votre demande de devis #%s", devisID),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// DevisNotification is addressed to the cabinet-resolved recipient and
// carries the uploaded documents through unmodified, keeping their original
// filenames.
func (c *Composer) DevisNotification(s domain.DevisSubmission, devisID string) (email.Message, error) {
	prenom, nom := domain.SplitName(s.Name)
	htmlBody, err := c.render("devis_notification.html", map[string]interface{}{
		"DevisID":     devisID,
		"Prenom":      prenom,
		"Nom":         nom,
		"Email":       s.Email,
		"Telephone":   s.Phone,
		"Adresse":     s.Address,
		"ProjectType": ProjectTypeLabel(s.ProjectType),
		"Budget":      BudgetLabel(s.Budget),
		"Timeline":    TimelineLabel(s.Timeline),
		"Description": s.Description,
		"FileCount":   len(s.Files),
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Nouvelle demande de devis

Référence: %s
Client: %s %s
Email: %s
Téléphone: %s
Adresse du projet: %s
Type de projet: %s
Budget estimé: %s
Délai souhaité: %s

Description du projet:
%s

Fichiers joints: %d
`, devisID, prenom, nom, s.Email, s.Phone, s.Address, ProjectTypeLabel(s.ProjectType),
		BudgetLabel(s.Budget), TimelineLabel(s.Timeline), s.Description, len(s.Files))

	attachments := make([]email.Attachment, 0, len(s.Files))
	for _, f := range s.Files {
		attachments = append(attachments, email.Attachment{
			Filename:    f.OriginalName,
			ContentType: f.ContentType,
			Content:     f.Content,
		})
	}

	return email.Message{
		To:          c.directory.Resolve(s.Cabinet),
		Subject:     fmt.Sprintf("Nouvelle demande de devis #%s", devisID),
		HTMLBody:    htmlBody,
		TextBody:    textBody,
		Attachments: attachments,
	}, nil
}

// =============================================================================
// Job application
// =============================================================================

// ApplicationConfirmation is addressed to the candidate.
func (c *Composer) ApplicationConfirmation(s domain.ApplicationSubmission, applicationID string) (email.Message, error) {
	htmlBody, err := c.render("application_confirmation.html", map[string]interface{}{
		"FirstName":     s.FirstName,
		"LastName":      s.LastName,
		"ApplicationID": applicationID,
		"JobTitle":      s.JobTitle,
		"FromName":      c.fromName,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Bonjour %s %s,

Nous avons bien reçu votre candidature (référence: %s) pour le poste de %s.

Notre équipe RH va étudier votre profil et vous recontactera si votre candidature est retenue pour la suite du processus de recrutement.

Cordialement,
L'équipe %s
`, s.FirstName, s.LastName, applicationID, s.JobTitle, c.fromName)

	return email.Message{
		To:       s.Email,
		Subject:  fmt.Sprintf("Confirmation de votre candidature #%s", applicationID),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// ApplicationNotification always goes to the administratif mailbox. Resume
// and cover letter are renamed after the candidate (CV_Prenom_Nom.ext,
// LM_Prenom_Nom.ext) so the recruiter never sees temporary upload names.
func (c *Composer) ApplicationNotification(s domain.ApplicationSubmission, applicationID string) (email.Message, error) {
	htmlBody, err := c.render("application_notification.html", map[string]interface{}{
		"ApplicationID": applicationID,
		"JobTitle":      s.JobTitle,
		"JobID":         s.JobID,
		"FirstName":     s.FirstName,
		"LastName":      s.LastName,
		"Email":         s.Email,
		"Telephone":     s.Phone,
		"Message":       s.Message,
		"HasCover":      s.CoverLetter != nil,
	})
	if err != nil {
		return email.Message{}, err
	}

	textBody := fmt.Sprintf(`Nouvelle candidature

Référence: %s
Poste: %s (ID: %d)
Candidat: %s %s
Email: %s
Téléphone: %s

%s
`, applicationID, s.JobTitle, s.JobID, s.FirstName, s.LastName, s.Email, s.Phone, Optional(s.Message))

	var attachments []email.Attachment
	if s.Resume != nil {
		attachments = append(attachments, email.Attachment{
			Filename:    candidateFilename("CV", s.FirstName, s.LastName, s.Resume.OriginalName),
			ContentType: s.Resume.ContentType,
			Content:     s.Resume.Content,
		})
	}
	if s.CoverLetter != nil {
		attachments = append(attachments, email.Attachment{
			Filename:    candidateFilename("LM", s.FirstName, s.LastName, s.CoverLetter.OriginalName),
			ContentType: s.CoverLetter.ContentType,
			Content:     s.CoverLetter.Content,
		})
	}

	return email.Message{
		To:          c.directory.Resolve(CabinetAdministratif),
		Subject:     fmt.Sprintf("Nouvelle candidature #%s pour %s", applicationID, s.JobTitle),
		HTMLBody:    htmlBody,
		TextBody:    textBody,
		Attachments: attachments,
	}, nil
}

// =============================================================================
// Internal helpers
// =============================================================================

func (c *Composer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// candidateFilename prefixes an attachment with a label and the candidate's
// name, keeping the original extension.
func candidateFilename(label, first, last, original string) string {
	return fmt.Sprintf("%s_%s_%s%s", label, first, last, filepath.Ext(original))
}

// nl2br escapes free text and converts newlines to <br> tags.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var frenchDays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateFR renders an ISO date the way the site always displayed
// appointment dates ("lundi 2 mars 2026"). Unparseable input is returned
// verbatim rather than failing the composition.
func FormatDateFR(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d %s %d",
		frenchDays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}
