package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xuri/excelize/v2"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
	"github.com/sanad-app/sanad-backend/internal/pkg/spreadsheet"
)

// ImportService defines the interface for spreadsheet imports
type ImportService interface {
	ImportParticipants(ctx context.Context, campaignID int64, file io.Reader, actorID int64) (*dto.ImportResult, error)
	ImportBeneficiaries(ctx context.Context, campaignID int64, file io.Reader, actorID int64) (*dto.ImportResult, error)
}

// importServiceImpl implements the ImportService interface
type importServiceImpl struct {
	db              *pgxpool.Pool
	campaignRepo    *repositories.CampaignRepository
	participantRepo *repositories.ParticipantRepository
	beneficiaryRepo *repositories.BeneficiaryRepository
	dictionaryRepo  *repositories.DictionaryRepository
}

// NewImportService creates a new import service instance
func NewImportService(
	db *pgxpool.Pool,
	campaignRepo *repositories.CampaignRepository,
	participantRepo *repositories.ParticipantRepository,
	beneficiaryRepo *repositories.BeneficiaryRepository,
	dictionaryRepo *repositories.DictionaryRepository,
) ImportService {
	return &importServiceImpl{
		db:              db,
		campaignRepo:    campaignRepo,
		participantRepo: participantRepo,
		beneficiaryRepo: beneficiaryRepo,
		dictionaryRepo:  dictionaryRepo,
	}
}

// sheetRows opens the workbook and returns the data rows plus the detected
// column map from the header row.
func (s *importServiceImpl) sheetRows(file io.Reader) ([][]string, spreadsheet.ColumnMap, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, spreadsheet.ColumnMap{}, fmt.Errorf("%w: unreadable spreadsheet", apperrors.ErrBadRequest)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, spreadsheet.ColumnMap{}, fmt.Errorf("error reading sheet rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, spreadsheet.ColumnMap{}, apperrors.ErrEmptySheet
	}

	return rows[1:], spreadsheet.DetectColumns(rows[0]), nil
}

// communeIndex maps normalized commune names to their ids for best-effort
// resolution of the free-text commune column.
func (s *importServiceImpl) communeIndex(ctx context.Context) (map[string]int64, error) {
	entries, err := s.dictionaryRepo.List(ctx, models.DictCommunes)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int64, len(entries))
	for _, e := range entries {
		index[spreadsheet.NormalizeCell(e.Name)] = e.ID
	}
	return index, nil
}

func resolveCommune(index map[string]int64, cell string) *int64 {
	if cell == "" {
		return nil
	}
	if id, ok := index[spreadsheet.NormalizeCell(cell)]; ok {
		return &id
	}
	return nil
}

// rowErr appends a generic row-level error
func rowErr(result *dto.ImportResult, rowNum int, msg string) {
	result.Errors = append(result.Errors, dto.RowError{Row: rowNum, Message: msg})
}

// classifyRowError turns a write failure into a row-level error, flagging
// duplicate national ids as their own class.
func classifyRowError(result *dto.ImportResult, rowNum int, cin string, err error) {
	if errors.Is(err, apperrors.ErrCINAlreadyExists) {
		result.Errors = append(result.Errors, dto.RowError{
			Row:       rowNum,
			Message:   "national id already registered",
			Duplicate: true,
			CIN:       cin,
		})
		return
	}
	logger.Warn().Err(err).Int("row", rowNum).Msg("Import row failed")
	rowErr(result, rowNum, "could not save row")
}

// ImportParticipants reads a participant spreadsheet into a campaign. Rows
// whose national id already exists in the target campaign update that record
// in place. A row whose first cell starts with the template footer markers
// ends the data section.
func (s *importServiceImpl) ImportParticipants(ctx context.Context, campaignID int64, file io.Reader, actorID int64) (*dto.ImportResult, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}

	rows, columns, err := s.sheetRows(file)
	if err != nil {
		return nil, err
	}
	communes, err := s.communeIndex(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result := &dto.ImportResult{}
	for i, row := range rows {
		rowNum := i + 2 // header occupies row 1
		if spreadsheet.IsBlankRow(row) {
			result.Skipped++
			continue
		}
		if spreadsheet.IsSentinelRow(row) {
			break
		}

		firstName := columns.Get(row, spreadsheet.ColFirstName)
		lastName := columns.Get(row, spreadsheet.ColLastName)
		cin := columns.Get(row, spreadsheet.ColCIN)
		if firstName == "" || lastName == "" || cin == "" {
			rowErr(result, rowNum, "first name, last name and national id are required")
			continue
		}

		var birthDate *time.Time
		if cell := columns.Get(row, spreadsheet.ColBirthDate); cell != "" {
			parsed, ok := spreadsheet.ParseDateCell(cell)
			if !ok {
				rowErr(result, rowNum, fmt.Sprintf("unparsable birth date %q", cell))
				continue
			}
			birthDate = &parsed
		}

		existing, err := s.participantRepo.GetByCIN(ctx, campaignID, cin)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			existing.FirstName = firstName
			existing.LastName = lastName
			existing.BirthDate = birthDate
			existing.Sex = spreadsheet.NormalizeSex(columns.Get(row, spreadsheet.ColSex))
			existing.Phone = columns.Get(row, spreadsheet.ColPhone)
			existing.Address = columns.Get(row, spreadsheet.ColAddress)
			existing.CommuneID = resolveCommune(communes, columns.Get(row, spreadsheet.ColCommune))
			existing.Status = spreadsheet.NormalizeStatus(columns.Get(row, spreadsheet.ColStatus))
			existing.UpdatedBy = &actorID
			if s.writeRow(ctx, tx, result, rowNum, cin, func(sp pgx.Tx) error {
				return s.participantRepo.UpdateTx(ctx, sp, existing)
			}) {
				result.Updated++
			}
			continue
		}

		participant := &models.Participant{
			CampaignID: campaignID,
			FirstName:  firstName,
			LastName:   lastName,
			CIN:        cin,
			BirthDate:  birthDate,
			Sex:        spreadsheet.NormalizeSex(columns.Get(row, spreadsheet.ColSex)),
			Phone:      columns.Get(row, spreadsheet.ColPhone),
			Address:    columns.Get(row, spreadsheet.ColAddress),
			CommuneID:  resolveCommune(communes, columns.Get(row, spreadsheet.ColCommune)),
			Status:     spreadsheet.NormalizeStatus(columns.Get(row, spreadsheet.ColStatus)),
			CreatedBy:  &actorID,
		}
		if s.writeRow(ctx, tx, result, rowNum, cin, func(sp pgx.Tx) error {
			return s.participantRepo.CreateTx(ctx, sp, participant)
		}) {
			result.Imported++
		}
	}

	if !result.Succeeded() {
		return result, apperrors.ErrNoRowsImported
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing import: %w", err)
	}
	return result, nil
}

// ImportBeneficiaries reads a beneficiary spreadsheet into a campaign.
// Unparsable birth dates degrade to null instead of a row error.
func (s *importServiceImpl) ImportBeneficiaries(ctx context.Context, campaignID int64, file io.Reader, actorID int64) (*dto.ImportResult, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}

	rows, columns, err := s.sheetRows(file)
	if err != nil {
		return nil, err
	}
	communes, err := s.communeIndex(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result := &dto.ImportResult{}
	for i, row := range rows {
		rowNum := i + 2
		if spreadsheet.IsBlankRow(row) {
			result.Skipped++
			continue
		}
		if spreadsheet.IsSentinelRow(row) {
			break
		}

		firstName := columns.Get(row, spreadsheet.ColFirstName)
		lastName := columns.Get(row, spreadsheet.ColLastName)
		cin := columns.Get(row, spreadsheet.ColCIN)
		if firstName == "" || lastName == "" || cin == "" {
			rowErr(result, rowNum, "first name, last name and national id are required")
			continue
		}

		var birthDate *time.Time
		if cell := columns.Get(row, spreadsheet.ColBirthDate); cell != "" {
			if parsed, ok := spreadsheet.ParseDateCell(cell); ok {
				birthDate = &parsed
			}
		}

		beneficiary := &models.Beneficiary{
			CampaignID:    &campaignID,
			FirstName:     firstName,
			LastName:      lastName,
			CIN:           cin,
			BirthDate:     birthDate,
			Sex:           spreadsheet.NormalizeSex(columns.Get(row, spreadsheet.ColSex)),
			Phone:         columns.Get(row, spreadsheet.ColPhone),
			Address:       columns.Get(row, spreadsheet.ColAddress),
			CommuneID:     resolveCommune(communes, columns.Get(row, spreadsheet.ColCommune)),
			Decision:      spreadsheet.NormalizeDecision(columns.Get(row, spreadsheet.ColDecision)),
			ChildInSchool: spreadsheet.NormalizeChildInSchool(columns.Get(row, spreadsheet.ColChildInSchool)),
			DeviceSide:    spreadsheet.NormalizeDeviceSide(columns.Get(row, spreadsheet.ColDeviceSide)),
			CreatedBy:     &actorID,
		}
		if s.writeRow(ctx, tx, result, rowNum, cin, func(sp pgx.Tx) error {
			return s.beneficiaryRepo.CreateTx(ctx, sp, beneficiary)
		}) {
			result.Imported++
		}
	}

	if !result.Succeeded() {
		return result, apperrors.ErrNoRowsImported
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing import: %w", err)
	}
	return result, nil
}

// writeRow runs one row write under a savepoint so a failed row does not
// poison the batch transaction. Returns true when the write succeeded.
func (s *importServiceImpl) writeRow(ctx context.Context, tx pgx.Tx, result *dto.ImportResult, rowNum int, cin string, write func(pgx.Tx) error) bool {
	sp, err := tx.Begin(ctx)
	if err != nil {
		rowErr(result, rowNum, "could not save row")
		return false
	}
	if err := write(sp); err != nil {
		sp.Rollback(ctx)
		classifyRowError(result, rowNum, cin, err)
		return false
	}
	if err := sp.Commit(ctx); err != nil {
		classifyRowError(result, rowNum, cin, err)
		return false
	}
	return true
}
