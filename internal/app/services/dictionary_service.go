package services

import (
	"context"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
)

// DictionaryService defines the generic reference-data CRUD surface
type DictionaryService interface {
	Kinds() []models.DictionaryKind
	ListEntries(ctx context.Context, kind models.DictionaryKind) ([]*models.DictionaryEntry, error)
	GetEntry(ctx context.Context, kind models.DictionaryKind, id int64) (*models.DictionaryEntry, error)
	CreateEntry(ctx context.Context, kind models.DictionaryKind, req *dto.DictionaryEntryRequest) (*models.DictionaryEntry, error)
	UpdateEntry(ctx context.Context, kind models.DictionaryKind, id int64, req *dto.DictionaryEntryRequest) (*models.DictionaryEntry, error)
	DeleteEntry(ctx context.Context, kind models.DictionaryKind, id int64) error
}

// dictionaryServiceImpl implements the DictionaryService interface
type dictionaryServiceImpl struct {
	dictionaryRepo *repositories.DictionaryRepository
}

// NewDictionaryService creates a new dictionary service instance
func NewDictionaryService(dictionaryRepo *repositories.DictionaryRepository) DictionaryService {
	return &dictionaryServiceImpl{
		dictionaryRepo: dictionaryRepo,
	}
}

// Kinds returns the closed set of dictionary kinds
func (s *dictionaryServiceImpl) Kinds() []models.DictionaryKind {
	return s.dictionaryRepo.Kinds()
}

// ListEntries retrieves all entries of a kind
func (s *dictionaryServiceImpl) ListEntries(ctx context.Context, kind models.DictionaryKind) ([]*models.DictionaryEntry, error) {
	return s.dictionaryRepo.List(ctx, kind)
}

// GetEntry retrieves one entry of a kind
func (s *dictionaryServiceImpl) GetEntry(ctx context.Context, kind models.DictionaryKind, id int64) (*models.DictionaryEntry, error) {
	return s.dictionaryRepo.GetByID(ctx, kind, id)
}

// validateParent checks the optional parent reference against the kind's
// rules. Only kinds supporting parents may carry one, and the parent must be
// a top-level entry of the same kind.
func (s *dictionaryServiceImpl) validateParent(ctx context.Context, kind models.DictionaryKind, parentID *int64) error {
	supportsParent, err := s.dictionaryRepo.KindSupportsParent(kind)
	if err != nil {
		return err
	}
	if parentID == nil {
		return nil
	}
	if !supportsParent {
		return apperrors.NewBadRequestError("this dictionary kind does not support parent entries")
	}

	parent, err := s.dictionaryRepo.GetByID(ctx, kind, *parentID)
	if err != nil {
		return err
	}
	if parent.ParentID != nil {
		return apperrors.NewBadRequestError("a sub-type cannot be the parent of another entry")
	}
	return nil
}

// CreateEntry creates an entry of a kind, enforcing per-kind name uniqueness
func (s *dictionaryServiceImpl) CreateEntry(ctx context.Context, kind models.DictionaryKind, req *dto.DictionaryEntryRequest) (*models.DictionaryEntry, error) {
	if err := s.validateParent(ctx, kind, req.ParentID); err != nil {
		return nil, err
	}

	exists, err := s.dictionaryRepo.NameExists(ctx, kind, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEntryAlreadyExists
	}

	entry := &models.DictionaryEntry{Name: req.Name, ParentID: req.ParentID}
	if err := s.dictionaryRepo.Create(ctx, kind, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateEntry updates an entry. The uniqueness check excludes the entry's own
// id.
func (s *dictionaryServiceImpl) UpdateEntry(ctx context.Context, kind models.DictionaryKind, id int64, req *dto.DictionaryEntryRequest) (*models.DictionaryEntry, error) {
	if _, err := s.dictionaryRepo.GetByID(ctx, kind, id); err != nil {
		return nil, err
	}
	if err := s.validateParent(ctx, kind, req.ParentID); err != nil {
		return nil, err
	}

	exists, err := s.dictionaryRepo.NameExists(ctx, kind, req.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEntryAlreadyExists
	}

	entry := &models.DictionaryEntry{ID: id, Name: req.Name, ParentID: req.ParentID}
	if err := s.dictionaryRepo.Update(ctx, kind, entry); err != nil {
		return nil, err
	}

	return s.dictionaryRepo.GetByID(ctx, kind, id)
}

// DeleteEntry deletes an entry unless the kind's in-use predicate holds
func (s *dictionaryServiceImpl) DeleteEntry(ctx context.Context, kind models.DictionaryKind, id int64) error {
	if _, err := s.dictionaryRepo.GetByID(ctx, kind, id); err != nil {
		return err
	}

	inUse, err := s.dictionaryRepo.IsInUse(ctx, kind, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.ErrEntryInUse
	}

	return s.dictionaryRepo.Delete(ctx, kind, id)
}
