package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/filestorage"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
)

// KafalaService defines the interface for guardianship case operations
type KafalaService interface {
	CreateKafala(ctx context.Context, req *dto.CreateKafalaRequest, document *multipart.FileHeader) (*models.Kafala, error)
	GetKafalaByID(ctx context.Context, id int64) (*models.Kafala, error)
	ListKafalas(ctx context.Context, search string, page, size int) ([]*models.Kafala, dto.PaginationInfo, error)
	UpdateKafala(ctx context.Context, id int64, req *dto.UpdateKafalaRequest) (*models.Kafala, error)
	AttachDocument(ctx context.Context, id int64, document *multipart.FileHeader) (*models.Kafala, error)
	DocumentPath(ctx context.Context, id int64) (path, name string, err error)
	RemoveDocument(ctx context.Context, id int64) error
	DeleteKafala(ctx context.Context, id int64) error
}

// kafalaServiceImpl implements the KafalaService interface
type kafalaServiceImpl struct {
	db         *pgxpool.Pool
	kafalaRepo *repositories.KafalaRepository
	storage    *filestorage.LocalStorage
}

// NewKafalaService creates a new kafala service instance
func NewKafalaService(db *pgxpool.Pool, kafalaRepo *repositories.KafalaRepository, storage *filestorage.LocalStorage) KafalaService {
	return &kafalaServiceImpl{
		db:         db,
		kafalaRepo: kafalaRepo,
		storage:    storage,
	}
}

// validatePDF accepts only PDF uploads, by declared content type with an
// extension fallback for clients that send application/octet-stream.
func validatePDF(document *multipart.FileHeader) error {
	contentType := document.Header.Get("Content-Type")
	if contentType == "application/pdf" {
		return nil
	}
	if strings.EqualFold(filepath.Ext(document.Filename), ".pdf") {
		return nil
	}
	return apperrors.ErrDocumentNotPDF
}

func (s *kafalaServiceImpl) buildKafala(req *dto.CreateKafalaRequest) (*models.Kafala, error) {
	marriageDate, err := helpers.ParseDatePtr(req.MarriageDate)
	if err != nil {
		return nil, fmt.Errorf("%w: marriageDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	childBirthDate, err := helpers.ParseDatePtr(req.ChildBirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: childBirthDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	return &models.Kafala{
		Reference:      strings.TrimSpace(req.Reference),
		FatherName:     req.FatherName,
		FatherCIN:      req.FatherCIN,
		MotherName:     req.MotherName,
		MotherCIN:      req.MotherCIN,
		MarriageDate:   marriageDate,
		ChildName:      req.ChildName,
		ChildBirthDate: childBirthDate,
		ChildSex:       models.Sex(req.ChildSex),
	}, nil
}

// CreateKafala creates a case, generating the reference when omitted, and
// stores the optional PDF document in the same transaction.
func (s *kafalaServiceImpl) CreateKafala(ctx context.Context, req *dto.CreateKafalaRequest, document *multipart.FileHeader) (*models.Kafala, error) {
	kafala, err := s.buildKafala(req)
	if err != nil {
		return nil, err
	}

	if document != nil {
		if err := validatePDF(document); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if kafala.Reference == "" {
		reference, err := s.kafalaRepo.NextReference(ctx, tx, time.Now().Year())
		if err != nil {
			return nil, err
		}
		kafala.Reference = reference
	} else {
		taken, err := s.kafalaRepo.ReferenceExists(ctx, kafala.Reference, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrReferenceAlreadyExists
		}
	}

	var storedPath string
	if document != nil {
		storedPath, err = s.storage.SaveFileWithPath(document, "kafala")
		if err != nil {
			return nil, fmt.Errorf("error storing kafala document: %w", err)
		}
		name := document.Filename
		mime := "application/pdf"
		size := document.Size
		kafala.DocumentName = &name
		kafala.DocumentPath = &storedPath
		kafala.DocumentMime = &mime
		kafala.DocumentSize = &size
	}

	if err := s.kafalaRepo.CreateTx(ctx, tx, kafala); err != nil {
		if storedPath != "" {
			if delErr := s.storage.DeleteFile(storedPath); delErr != nil {
				logger.Warn().Err(delErr).Str("path", storedPath).Msg("Failed to clean up kafala document after rollback")
			}
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		if storedPath != "" {
			if delErr := s.storage.DeleteFile(storedPath); delErr != nil {
				logger.Warn().Err(delErr).Str("path", storedPath).Msg("Failed to clean up kafala document after rollback")
			}
		}
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return s.kafalaRepo.GetByID(ctx, kafala.ID)
}

// GetKafalaByID retrieves a case by ID
func (s *kafalaServiceImpl) GetKafalaByID(ctx context.Context, id int64) (*models.Kafala, error) {
	return s.kafalaRepo.GetByID(ctx, id)
}

// ListKafalas retrieves a page of cases matching the search text
func (s *kafalaServiceImpl) ListKafalas(ctx context.Context, search string, page, size int) ([]*models.Kafala, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	kafalas, total, err := s.kafalaRepo.List(ctx, search, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return kafalas, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateKafala updates the case fields. An empty reference keeps the current
// one; the document is managed separately.
func (s *kafalaServiceImpl) UpdateKafala(ctx context.Context, id int64, req *dto.UpdateKafalaRequest) (*models.Kafala, error) {
	existing, err := s.kafalaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	createReq := dto.CreateKafalaRequest(*req)
	kafala, err := s.buildKafala(&createReq)
	if err != nil {
		return nil, err
	}
	kafala.ID = id
	if kafala.Reference == "" {
		kafala.Reference = existing.Reference
	} else if kafala.Reference != existing.Reference {
		taken, err := s.kafalaRepo.ReferenceExists(ctx, kafala.Reference, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrReferenceAlreadyExists
		}
	}

	if err := s.kafalaRepo.Update(ctx, kafala); err != nil {
		return nil, err
	}

	return s.kafalaRepo.GetByID(ctx, id)
}

// AttachDocument stores a new PDF for the case, replacing any previous one.
func (s *kafalaServiceImpl) AttachDocument(ctx context.Context, id int64, document *multipart.FileHeader) (*models.Kafala, error) {
	kafala, err := s.kafalaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validatePDF(document); err != nil {
		return nil, err
	}

	storedPath, err := s.storage.SaveFileWithPath(document, "kafala")
	if err != nil {
		return nil, fmt.Errorf("error storing kafala document: %w", err)
	}

	if err := s.kafalaRepo.SetDocument(ctx, id, document.Filename, storedPath, "application/pdf", document.Size); err != nil {
		if delErr := s.storage.DeleteFile(storedPath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", storedPath).Msg("Failed to clean up kafala document")
		}
		return nil, err
	}

	// Remove the replaced file after the new one is recorded
	if kafala.DocumentPath != nil {
		if err := s.storage.DeleteFile(*kafala.DocumentPath); err != nil {
			logger.Warn().Err(err).Str("path", *kafala.DocumentPath).Msg("Failed to delete replaced kafala document")
		}
	}

	return s.kafalaRepo.GetByID(ctx, id)
}

// DocumentPath returns the absolute path and original filename of the case
// document for download.
func (s *kafalaServiceImpl) DocumentPath(ctx context.Context, id int64) (string, string, error) {
	kafala, err := s.kafalaRepo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	if !kafala.HasDocument() {
		return "", "", apperrors.ErrKafalaDocumentNotFound
	}

	name := "kafala.pdf"
	if kafala.DocumentName != nil {
		name = *kafala.DocumentName
	}
	return s.storage.FullPath(*kafala.DocumentPath), name, nil
}

// RemoveDocument deletes the case document from storage and clears its
// metadata.
func (s *kafalaServiceImpl) RemoveDocument(ctx context.Context, id int64) error {
	kafala, err := s.kafalaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !kafala.HasDocument() {
		return apperrors.ErrKafalaDocumentNotFound
	}

	if err := s.kafalaRepo.ClearDocument(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(*kafala.DocumentPath); err != nil {
		logger.Warn().Err(err).Str("path", *kafala.DocumentPath).Msg("Failed to delete kafala document file")
	}

	return nil
}

// DeleteKafala deletes a case and its stored document
func (s *kafalaServiceImpl) DeleteKafala(ctx context.Context, id int64) error {
	kafala, err := s.kafalaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.kafalaRepo.Delete(ctx, id); err != nil {
		return err
	}

	if kafala.HasDocument() {
		if err := s.storage.DeleteFile(*kafala.DocumentPath); err != nil {
			logger.Warn().Err(err).Str("path", *kafala.DocumentPath).Msg("Failed to delete kafala document file")
		}
	}

	return nil
}
