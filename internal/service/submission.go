package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/email"
	"github.com/batihr/backend/internal/metrics"
	"github.com/batihr/backend/internal/notify"
	"github.com/batihr/backend/internal/repository"
	"github.com/batihr/backend/internal/storage"
)

// SubmissionService handles the four public form submissions. Every accepted
// submission produces two emails: a confirmation to the submitter and a
// notification to the cabinet mailbox. Both are dispatched concurrently and
// joined before the call returns, so the caller knows whether delivery
// succeeded.
type SubmissionService interface {
	// SubmitContact processes a contact-form message and returns its
	// tracking reference.
	SubmitContact(ctx context.Context, s domain.ContactSubmission) (string, error)

	// SubmitAppointment processes an appointment request and returns its
	// tracking reference.
	SubmitAppointment(ctx context.Context, s domain.AppointmentSubmission) (string, error)

	// SubmitDevis persists a quote request with its documents and returns
	// its tracking reference.
	SubmitDevis(ctx context.Context, s domain.DevisSubmission) (string, error)

	// SubmitApplication processes a job application and returns its
	// tracking reference. The job title is resolved from JobID when empty.
	SubmitApplication(ctx context.Context, s domain.ApplicationSubmission) (string, error)
}

type submissionService struct {
	queries    *repository.Queries
	composer   *notify.Composer
	dispatcher email.Dispatcher
	store      storage.Storage
	logger     *slog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	queries *repository.Queries,
	composer *notify.Composer,
	dispatcher email.Dispatcher,
	store storage.Storage,
	logger *slog.Logger,
) SubmissionService {
	return &submissionService{
		queries:    queries,
		composer:   composer,
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
	}
}

const msgMissingFields = "Veuillez fournir toutes les informations requises"

func (s *submissionService) SubmitContact(ctx context.Context, sub domain.ContactSubmission) (string, error) {
	const op = "SubmissionService.SubmitContact"

	if hasBlank(sub.Name, sub.Email, sub.Subject, sub.Message, sub.Cabinet) {
		metrics.RecordSubmission(metrics.KindContact, "rejected")
		return "", domain.Invalid(op, msgMissingFields)
	}
	if !validEmail(sub.Email) {
		metrics.RecordSubmission(metrics.KindContact, "rejected")
		return "", domain.Invalid(op, "Veuillez fournir une adresse email valide")
	}

	messageID := domain.NewTrackingID(domain.PrefixContact)

	confirmation, err := s.composer.ContactConfirmation(sub, messageID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose confirmation")
	}
	notification, err := s.composer.ContactNotification(sub, messageID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose notification")
	}

	if err := s.dispatchPair(ctx, metrics.KindContact, confirmation, notification); err != nil {
		s.logger.Error("contact emails failed", "error", err, "op", op, "message_id", messageID)
		metrics.RecordSubmission(metrics.KindContact, "notify_failed")
		return messageID, domain.NotificationFailed(op, "Le message a été enregistré mais l'email n'a pas pu être envoyé")
	}

	s.logger.Info("contact submitted", "message_id", messageID, "cabinet", sub.Cabinet)
	metrics.RecordSubmission(metrics.KindContact, "accepted")
	return messageID, nil
}

func (s *submissionService) SubmitAppointment(ctx context.Context, sub domain.AppointmentSubmission) (string, error) {
	const op = "SubmissionService.SubmitAppointment"

	if hasBlank(sub.Name, sub.Email, sub.Phone, sub.Date, sub.Time, sub.Reason, sub.PreferredMethod, sub.Cabinet) {
		metrics.RecordSubmission(metrics.KindAppointment, "rejected")
		return "", domain.Invalid(op, msgMissingFields)
	}
	if !validEmail(sub.Email) {
		metrics.RecordSubmission(metrics.KindAppointment, "rejected")
		return "", domain.Invalid(op, "Veuillez fournir une adresse email valide")
	}

	appointmentID := domain.NewTrackingID(domain.PrefixAppointment)

	confirmation, err := s.composer.AppointmentConfirmation(sub, appointmentID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose confirmation")
	}
	notification, err := s.composer.AppointmentNotification(sub, appointmentID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose notification")
	}

	if err := s.dispatchPair(ctx, metrics.KindAppointment, confirmation, notification); err != nil {
		s.logger.Error("appointment emails failed", "error", err, "op", op, "appointment_id", appointmentID)
		metrics.RecordSubmission(metrics.KindAppointment, "notify_failed")
		return appointmentID, domain.NotificationFailed(op, "Le rendez-vous a été enregistré mais l'email n'a pas pu être envoyé")
	}

	s.logger.Info("appointment submitted", "appointment_id", appointmentID, "cabinet", sub.Cabinet)
	metrics.RecordSubmission(metrics.KindAppointment, "accepted")
	return appointmentID, nil
}

func (s *submissionService) SubmitDevis(ctx context.Context, sub domain.DevisSubmission) (string, error) {
	const op = "SubmissionService.SubmitDevis"

	if hasBlank(sub.Name, sub.Email, sub.Phone, sub.Address, sub.ProjectType,
		sub.Description, sub.Budget, sub.Timeline, sub.Cabinet) {
		metrics.RecordSubmission(metrics.KindDevis, "rejected")
		return "", domain.Invalid(op, msgMissingFields)
	}
	if !validEmail(sub.Email) {
		metrics.RecordSubmission(metrics.KindDevis, "rejected")
		return "", domain.Invalid(op, "Veuillez fournir une adresse email valide")
	}

	devisID := domain.NewTrackingID(domain.PrefixDevis)
	prenom, nom := domain.SplitName(sub.Name)

	if _, err := s.queries.CreateDevis(ctx, repository.CreateDevisParams{
		DevisID:     devisID,
		Nom:         nom,
		Prenom:      prenom,
		Email:       sub.Email,
		Telephone:   sub.Phone,
		Adresse:     toNullString(sub.Address),
		ProjectType: sub.ProjectType,
		Description: sub.Description,
		Budget:      toNullString(sub.Budget),
		Timeline:    toNullString(sub.Timeline),
		Cabinet:     toNullString(sub.Cabinet),
	}); err != nil {
		s.logger.Error("failed to persist devis", "error", err, "op", op, "devis_id", devisID)
		return "", domain.Internal(err, op, "Failed to save quote request")
	}

	s.storeDevisFiles(ctx, devisID, sub.Files)

	confirmation, err := s.composer.DevisConfirmation(sub, devisID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose confirmation")
	}
	notification, err := s.composer.DevisNotification(sub, devisID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose notification")
	}

	if err := s.dispatchPair(ctx, metrics.KindDevis, confirmation, notification); err != nil {
		s.logger.Error("devis emails failed", "error", err, "op", op, "devis_id", devisID)
		metrics.RecordSubmission(metrics.KindDevis, "notify_failed")
		return devisID, domain.NotificationFailed(op, "La demande a été enregistrée mais l'email n'a pas pu être envoyé")
	}

	s.logger.Info("devis submitted", "devis_id", devisID, "cabinet", sub.Cabinet, "files", len(sub.Files))
	metrics.RecordSubmission(metrics.KindDevis, "accepted")
	return devisID, nil
}

func (s *submissionService) SubmitApplication(ctx context.Context, sub domain.ApplicationSubmission) (string, error) {
	const op = "SubmissionService.SubmitApplication"

	if sub.JobID == 0 || hasBlank(sub.FirstName, sub.LastName, sub.Email, sub.Phone) {
		metrics.RecordSubmission(metrics.KindApplication, "rejected")
		return "", domain.Invalid(op, msgMissingFields)
	}
	if !validEmail(sub.Email) {
		metrics.RecordSubmission(metrics.KindApplication, "rejected")
		return "", domain.Invalid(op, "Veuillez fournir une adresse email valide")
	}
	if sub.Resume == nil || len(sub.Resume.Content) == 0 {
		metrics.RecordSubmission(metrics.KindApplication, "rejected")
		return "", domain.Invalid(op, "Le CV est requis")
	}
	if !sub.Consent {
		metrics.RecordSubmission(metrics.KindApplication, "rejected")
		return "", domain.Invalid(op, "Vous devez accepter le traitement de vos données personnelles")
	}

	if sub.JobTitle == "" {
		job, err := s.queries.GetJobByID(ctx, sub.JobID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				metrics.RecordSubmission(metrics.KindApplication, "rejected")
				return "", domain.NotFound(op, "Offre d'emploi non trouvée")
			}
			s.logger.Error("failed to resolve job", "error", err, "op", op, "job_id", sub.JobID)
			return "", domain.Internal(err, op, "Failed to resolve job")
		}
		sub.JobTitle = job.Title
	}

	applicationID := domain.NewTrackingID(domain.PrefixApplication)

	confirmation, err := s.composer.ApplicationConfirmation(sub, applicationID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose confirmation")
	}
	notification, err := s.composer.ApplicationNotification(sub, applicationID)
	if err != nil {
		return "", domain.Internal(err, op, "Failed to compose notification")
	}

	if err := s.dispatchPair(ctx, metrics.KindApplication, confirmation, notification); err != nil {
		s.logger.Error("application emails failed", "error", err, "op", op, "application_id", applicationID)
		metrics.RecordSubmission(metrics.KindApplication, "notify_failed")
		return applicationID, domain.NotificationFailed(op, "La candidature a été enregistrée mais l'email n'a pas pu être envoyé")
	}

	s.logger.Info("application submitted",
		"application_id", applicationID, "job_id", sub.JobID, "job_title", sub.JobTitle)
	metrics.RecordSubmission(metrics.KindApplication, "accepted")
	return applicationID, nil
}

// dispatchPair sends the confirmation and the notification concurrently and
// waits for both. A failure of either one surfaces as an error; the other
// send is never cancelled, a partial delivery beats none.
func (s *submissionService) dispatchPair(ctx context.Context, kind string, confirmation, notification email.Message) error {
	var wg sync.WaitGroup
	var confErr, notifErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		confErr = s.dispatcher.Send(ctx, confirmation)
	}()
	go func() {
		defer wg.Done()
		notifErr = s.dispatcher.Send(ctx, notification)
	}()
	wg.Wait()

	recordEmailOutcome(kind, confErr)
	recordEmailOutcome(kind, notifErr)

	return errors.Join(confErr, notifErr)
}

// storeDevisFiles persists the uploaded documents. Storage trouble is logged
// and skipped: the devis row already exists and the notification email still
// carries the files from memory.
func (s *submissionService) storeDevisFiles(ctx context.Context, devisID string, files []domain.Attachment) {
	const op = "SubmissionService.storeDevisFiles"

	for i := range files {
		f := &files[i]
		key := storage.DevisDocumentKey(devisID, f.OriginalName)
		err := s.store.Put(ctx, key, bytes.NewReader(f.Content), storage.PutOptions{
			ContentType: f.ContentType,
		})
		if err != nil {
			s.logger.Error("failed to store devis document",
				"error", err, "op", op, "devis_id", devisID, "filename", f.OriginalName)
			continue
		}
		f.StorageKey = key

		if err := s.queries.CreateDevisDocument(ctx, repository.CreateDevisDocumentParams{
			ID:           uuid.New(),
			DevisRef:     devisID,
			OriginalName: f.OriginalName,
			StorageKey:   key,
			Size:         f.Size,
			MimeType:     f.ContentType,
		}); err != nil {
			s.logger.Error("failed to record devis document",
				"error", err, "op", op, "devis_id", devisID, "key", key)
			continue
		}
		metrics.DocumentsStoredTotal.WithLabelValues(metrics.KindDevis).Inc()
	}
}

func recordEmailOutcome(kind string, err error) {
	if err != nil {
		metrics.RecordEmail(kind, "failed")
		return
	}
	metrics.RecordEmail(kind, "sent")
}

// hasBlank reports whether any of the values is empty after trimming.
func hasBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// validEmail accepts anything net/mail can parse as a single address.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(strings.TrimSpace(addr))
	return err == nil && parsed.Address != ""
}
