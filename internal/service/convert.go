package service

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/sqlc-dev/pqtype"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/repository"
)

// toNullString converts a string to sql.NullString.
func toNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}

// fromNullString converts sql.NullString to string.
func fromNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// toNullJSON marshals v into a nullable JSONB value. A nil v yields SQL NULL.
func toNullJSON(v interface{}) (pqtype.NullRawMessage, error) {
	if v == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// repoServiceToDomain converts a repository Service to a domain Service.
func repoServiceToDomain(rs repository.Service) domain.Service {
	return domain.Service{
		ID:          rs.ID,
		Title:       rs.Title,
		Description: rs.Description,
		Image:       fromNullString(rs.Image),
		Slug:        rs.Slug,
		Active:      rs.Active,
		SortOrder:   int(rs.SortOrder),
		CreatedAt:   rs.CreatedAt,
		UpdatedAt:   rs.UpdatedAt,
	}
}

// repoServiceDetailToDomain converts a repository ServiceDetail to its domain form.
func repoServiceDetailToDomain(rd repository.ServiceDetail) domain.ServiceDetail {
	return domain.ServiceDetail{
		ID:        rd.ID,
		ServiceID: rd.ServiceID,
		Section:   rd.Section,
		Content:   rd.Content,
		SortOrder: int(rd.SortOrder),
	}
}

// repoJobToDomain converts a repository Job to a domain Job.
func repoJobToDomain(rj repository.Job) domain.Job {
	return domain.Job{
		ID:              rj.ID,
		Title:           rj.Title,
		Slug:            rj.Slug,
		Location:        rj.Location,
		Type:            rj.Type,
		Category:        rj.Category,
		Description:     rj.Description,
		FullDescription: fromNullString(rj.FullDescription),
		Salary:          fromNullString(rj.Salary),
		Experience:      fromNullString(rj.Experience),
		Education:       fromNullString(rj.Education),
		PublishDate:     rj.PublishDate,
		Featured:        rj.Featured,
		Active:          rj.Active,
		CreatedAt:       rj.CreatedAt,
		UpdatedAt:       rj.UpdatedAt,
	}
}

// repoProjectToDomain converts a repository Project to a domain Project,
// decoding the JSONB gallery and testimonial columns. Malformed JSON is
// treated as absent rather than failing the whole read.
func repoProjectToDomain(rp repository.Project) domain.Project {
	p := domain.Project{
		ID:              rp.ID,
		Title:           rp.Title,
		Slug:            rp.Slug,
		Description:     rp.Description,
		FullDescription: fromNullString(rp.FullDescription),
		Category:        rp.Category,
		Location:        rp.Location,
		Year:            int(rp.Year),
		Client:          fromNullString(rp.Client),
		Surface:         fromNullString(rp.Surface),
		Duration:        fromNullString(rp.Duration),
		Image:           rp.Image,
		Gallery:         []string{},
		Featured:        rp.Featured,
		Active:          rp.Active,
		CreatedAt:       rp.CreatedAt,
		UpdatedAt:       rp.UpdatedAt,
	}
	if rp.Gallery.Valid {
		var gallery []string
		if err := json.Unmarshal(rp.Gallery.RawMessage, &gallery); err == nil {
			p.Gallery = gallery
		}
	}
	if rp.Testimonial.Valid {
		var t domain.Testimonial
		if err := json.Unmarshal(rp.Testimonial.RawMessage, &t); err == nil && t.Text != "" {
			p.Testimonial = &t
		}
	}
	return p
}

// projectsToDomain converts a batch of repository rows.
func projectsToDomain(rows []repository.Project) []domain.Project {
	projects := make([]domain.Project, len(rows))
	for i, r := range rows {
		projects[i] = repoProjectToDomain(r)
	}
	return projects
}

// repoSettingToDomain converts a repository SiteSetting to a domain Setting.
func repoSettingToDomain(rs repository.SiteSetting) domain.Setting {
	return domain.Setting{
		Key:    rs.SettingKey,
		Value:  rs.SettingValue,
		Group:  rs.SettingGroup,
		Public: rs.IsPublic,
	}
}

// repoDevisToDomain converts a repository Devis to a domain Devis.
func repoDevisToDomain(rd repository.Devis) domain.Devis {
	return domain.Devis{
		ID:          rd.ID,
		DevisID:     rd.DevisID,
		Nom:         rd.Nom,
		Prenom:      rd.Prenom,
		Email:       rd.Email,
		Telephone:   rd.Telephone,
		Adresse:     fromNullString(rd.Adresse),
		ProjectType: rd.ProjectType,
		Description: rd.Description,
		Budget:      fromNullString(rd.Budget),
		Timeline:    fromNullString(rd.Timeline),
		Cabinet:     fromNullString(rd.Cabinet),
		Status:      rd.Status,
		Notes:       fromNullString(rd.Notes),
		CreatedAt:   rd.CreatedAt,
		UpdatedAt:   rd.UpdatedAt,
	}
}
