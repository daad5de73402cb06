package services

import (
	"context"
	"fmt"

	"github.com/alazar/finance-backend/internal/core/ports"
	"github.com/alazar/finance-backend/internal/dto"
	"github.com/alazar/finance-backend/internal/models"
)

// DocumentService serves whole-document fetch/replace and the two
// singleton merge-and-persist records.
type DocumentService struct {
	repo ports.DocumentRepository
}

func NewDocumentService(repo ports.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo}
}

// Get returns the full persisted document.
func (s *DocumentService) Get(ctx context.Context) (models.Document, error) {
	return s.repo.Load(ctx)
}

// Replace overwrites the persisted document with the supplied one.
func (s *DocumentService) Replace(ctx context.Context, doc models.Document) error {
	doc.Normalize()
	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// GetOrganization returns the singleton organization record.
func (s *DocumentService) GetOrganization(ctx context.Context) (models.Organization, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return models.Organization{}, err
	}
	return doc.Organization, nil
}

// UpdateOrganization merges the supplied fields over the organization
// record and persists the document.
func (s *DocumentService) UpdateOrganization(ctx context.Context, patch dto.OrganizationPatch) (models.Organization, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return models.Organization{}, err
	}
	doc.Organization = patch.Apply(doc.Organization)
	if err := s.repo.Save(ctx, doc); err != nil {
		return models.Organization{}, fmt.Errorf("failed to save document: %w", err)
	}
	return doc.Organization, nil
}

// GetAppSettings returns the singleton settings record.
func (s *DocumentService) GetAppSettings(ctx context.Context) (models.AppSettings, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return models.AppSettings{}, err
	}
	return doc.AppSettings, nil
}

// UpdateAppSettings merges the supplied fields over the settings record
// and persists the document.
func (s *DocumentService) UpdateAppSettings(ctx context.Context, patch dto.AppSettingsPatch) (models.AppSettings, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return models.AppSettings{}, err
	}
	doc.AppSettings = patch.Apply(doc.AppSettings)
	if err := s.repo.Save(ctx, doc); err != nil {
		return models.AppSettings{}, fmt.Errorf("failed to save document: %w", err)
	}
	return doc.AppSettings, nil
}
