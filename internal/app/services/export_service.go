package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/spreadsheet"
)

// exportHeaders mirrors the positional fallback order of the importer so an
// exported sheet re-imports without a column map.
var (
	participantHeaders = []string{
		"Prénom", "Nom", "CIN", "Date de naissance", "Sexe",
		"Téléphone", "Adresse", "Commune", "Statut",
	}
	beneficiaryHeaders = []string{
		"Prénom", "Nom", "CIN", "Date de naissance", "Sexe",
		"Téléphone", "Adresse", "Commune", "Décision",
		"Enfant scolarisé", "Appareillage",
	}
	participantWidths = []float64{16, 16, 12, 16, 8, 14, 30, 18, 12}
	beneficiaryWidths = []float64{16, 16, 12, 16, 8, 14, 30, 18, 12, 16, 14}
)

var templateInstructions = []string{
	"Remplissez une ligne par personne, sans toucher à la ligne d'en-tête.",
	"CIN, prénom et nom sont obligatoires.",
	"Les dates s'écrivent au format JJ/MM/AAAA.",
	"Ne rien écrire sous cette section.",
}

// ExportService defines the interface for spreadsheet exports
type ExportService interface {
	ExportParticipants(ctx context.Context, campaignID int64) (*bytes.Buffer, string, error)
	ExportBeneficiaries(ctx context.Context, campaignID int64) (*bytes.Buffer, string, error)
	ParticipantTemplate(ctx context.Context) (*bytes.Buffer, string, error)
	BeneficiaryTemplate(ctx context.Context) (*bytes.Buffer, string, error)
}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	campaignRepo    *repositories.CampaignRepository
	participantRepo *repositories.ParticipantRepository
	beneficiaryRepo *repositories.BeneficiaryRepository
	dictionaryRepo  *repositories.DictionaryRepository
}

// NewExportService creates a new export service instance
func NewExportService(
	campaignRepo *repositories.CampaignRepository,
	participantRepo *repositories.ParticipantRepository,
	beneficiaryRepo *repositories.BeneficiaryRepository,
	dictionaryRepo *repositories.DictionaryRepository,
) ExportService {
	return &exportServiceImpl{
		campaignRepo:    campaignRepo,
		participantRepo: participantRepo,
		beneficiaryRepo: beneficiaryRepo,
		dictionaryRepo:  dictionaryRepo,
	}
}

func (s *exportServiceImpl) communeNames(ctx context.Context) ([]string, error) {
	entries, err := s.dictionaryRepo.List(ctx, models.DictCommunes)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("02/01/2006")
}

func communeName(c *models.Commune) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func formatChildInSchool(v *bool) string {
	switch {
	case v == nil:
		return ""
	case *v:
		return "oui"
	default:
		return "non"
	}
}

// participantSheet builds a participant workbook with dropdown validation on
// the enumerated columns and the template footer sections.
func (s *exportServiceImpl) participantSheet(ctx context.Context, participants []*models.Participant) (*bytes.Buffer, error) {
	communes, err := s.communeNames(ctx)
	if err != nil {
		return nil, err
	}

	b, err := spreadsheet.NewBuilder("Participants")
	if err != nil {
		return nil, err
	}
	if err := b.WriteHeader(participantHeaders, participantWidths); err != nil {
		return nil, err
	}
	if err := b.AddInlineDropdown(4, []string{"M", "F"}); err != nil {
		return nil, err
	}
	if err := b.AddInlineDropdown(8, []string{"awaiting", "yes", "no"}); err != nil {
		return nil, err
	}
	if len(communes) > 0 {
		if err := b.AddReferenceDropdown(7, "Références", communes); err != nil {
			return nil, err
		}
	}

	for _, p := range participants {
		if err := b.AppendRow([]interface{}{
			p.FirstName, p.LastName, p.CIN, formatDate(p.BirthDate), string(p.Sex),
			p.Phone, p.Address, communeName(p.Commune), string(p.Status),
		}); err != nil {
			return nil, err
		}
	}

	if err := s.appendFooter(b, communes); err != nil {
		return nil, err
	}
	return b.Buffer()
}

func (s *exportServiceImpl) beneficiarySheet(ctx context.Context, beneficiaries []*models.Beneficiary) (*bytes.Buffer, error) {
	communes, err := s.communeNames(ctx)
	if err != nil {
		return nil, err
	}

	b, err := spreadsheet.NewBuilder("Bénéficiaires")
	if err != nil {
		return nil, err
	}
	if err := b.WriteHeader(beneficiaryHeaders, beneficiaryWidths); err != nil {
		return nil, err
	}
	if err := b.AddInlineDropdown(4, []string{"M", "F"}); err != nil {
		return nil, err
	}
	if err := b.AddInlineDropdown(8, []string{"accepted", "pending", "refused"}); err != nil {
		return nil, err
	}
	if err := b.AddInlineDropdown(9, []string{"oui", "non"}); err != nil {
		return nil, err
	}
	if err := b.AddInlineDropdown(10, []string{"unilateral", "bilateral", "unknown"}); err != nil {
		return nil, err
	}
	if len(communes) > 0 {
		if err := b.AddReferenceDropdown(7, "Références", communes); err != nil {
			return nil, err
		}
	}

	for _, bn := range beneficiaries {
		if err := b.AppendRow([]interface{}{
			bn.FirstName, bn.LastName, bn.CIN, formatDate(bn.BirthDate), string(bn.Sex),
			bn.Phone, bn.Address, communeName(bn.Commune), string(bn.Decision),
			formatChildInSchool(bn.ChildInSchool), string(bn.DeviceSide),
		}); err != nil {
			return nil, err
		}
	}

	if err := s.appendFooter(b, communes); err != nil {
		return nil, err
	}
	return b.Buffer()
}

// appendFooter writes the human-readable sections the importer recognizes as
// end-of-data sentinels.
func (s *exportServiceImpl) appendFooter(b *spreadsheet.Builder, communes []string) error {
	b.SkipRow()
	if err := b.AppendFooterSection("INSTRUCTIONS", templateInstructions); err != nil {
		return err
	}
	b.SkipRow()
	return b.AppendFooterSection("COMMUNES", communes)
}

// ExportParticipants renders every participant of a campaign to a workbook
func (s *exportServiceImpl) ExportParticipants(ctx context.Context, campaignID int64) (*bytes.Buffer, string, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}
	participants, err := s.participantRepo.ListAllByCampaign(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}
	buf, err := s.participantSheet(ctx, participants)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("participants_%s_%s.xlsx", sanitizeFilePart(campaign.Name), time.Now().Format("2006-01-02")), nil
}

// ExportBeneficiaries renders every beneficiary of a campaign to a workbook
func (s *exportServiceImpl) ExportBeneficiaries(ctx context.Context, campaignID int64) (*bytes.Buffer, string, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}
	beneficiaries, err := s.beneficiaryRepo.ListAllByCampaign(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}
	buf, err := s.beneficiarySheet(ctx, beneficiaries)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("beneficiaires_%s_%s.xlsx", sanitizeFilePart(campaign.Name), time.Now().Format("2006-01-02")), nil
}

// ParticipantTemplate renders an empty participant import template
func (s *exportServiceImpl) ParticipantTemplate(ctx context.Context) (*bytes.Buffer, string, error) {
	buf, err := s.participantSheet(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	return buf, "modele_participants.xlsx", nil
}

// BeneficiaryTemplate renders an empty beneficiary import template
func (s *exportServiceImpl) BeneficiaryTemplate(ctx context.Context) (*bytes.Buffer, string, error) {
	buf, err := s.beneficiarySheet(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	return buf, "modele_beneficiaires.xlsx", nil
}

// sanitizeFilePart keeps campaign names safe inside a download filename
func sanitizeFilePart(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "campagne"
	}
	return string(out)
}
