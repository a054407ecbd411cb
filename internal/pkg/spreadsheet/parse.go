package spreadsheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// Column identifies a logical import column.
type Column int

const (
	ColFirstName Column = iota
	ColLastName
	ColCIN
	ColBirthDate
	ColSex
	ColPhone
	ColAddress
	ColCommune
	ColStatus
	ColDecision
	ColChildInSchool
	ColDeviceSide
	columnCount
)

// headerSynonyms maps normalized header names to logical columns. Matching is
// case- and diacritic-insensitive; unmatched columns fall back to fixed
// positions.
var headerSynonyms = map[string]Column{
	"prenom":     ColFirstName,
	"first name": ColFirstName,
	"firstname":  ColFirstName,

	"nom":       ColLastName,
	"name":      ColLastName,
	"last name": ColLastName,
	"lastname":  ColLastName,

	"cin":          ColCIN,
	"national id":  ColCIN,
	"numero cin":   ColCIN,
	"n cin":        ColCIN,
	"identifiant":  ColCIN,

	"date de naissance": ColBirthDate,
	"naissance":         ColBirthDate,
	"birth date":        ColBirthDate,
	"birthdate":         ColBirthDate,
	"ddn":               ColBirthDate,

	"sexe": ColSex,
	"sex":  ColSex,

	"telephone": ColPhone,
	"tel":       ColPhone,
	"gsm":       ColPhone,
	"phone":     ColPhone,

	"adresse": ColAddress,
	"address": ColAddress,

	"commune": ColCommune,

	"statut": ColStatus,
	"status": ColStatus,
	"etat":   ColStatus,

	"decision": ColDecision,

	"scolarise":       ColChildInSchool,
	"enfant scolarise": ColChildInSchool,
	"child in school": ColChildInSchool,

	"appareillage": ColDeviceSide,
	"cote":         ColDeviceSide,
	"side":         ColDeviceSide,
	"device side":  ColDeviceSide,
}

// defaultPositions is the positional fallback used when a column is not
// matched by header name, mirroring the exported template layout.
var defaultPositions = [columnCount]int{
	ColFirstName:     0,
	ColLastName:      1,
	ColCIN:           2,
	ColBirthDate:     3,
	ColSex:           4,
	ColPhone:         5,
	ColAddress:       6,
	ColCommune:       7,
	ColStatus:        8,
	ColDecision:      8,
	ColChildInSchool: 9,
	ColDeviceSide:    10,
}

// ColumnMap resolves logical columns to sheet indices for one import.
type ColumnMap struct {
	indices [columnCount]int
}

// DetectColumns builds a ColumnMap from the header row. Every column gets an
// index: named match first, fixed position otherwise.
func DetectColumns(header []string) ColumnMap {
	m := ColumnMap{indices: defaultPositions}
	for idx, cell := range header {
		name := NormalizeCell(cell)
		if col, ok := headerSynonyms[name]; ok {
			m.indices[col] = idx
		}
	}
	return m
}

// Get returns the cell for a logical column, empty when the row is short.
func (m ColumnMap) Get(row []string, col Column) string {
	idx := m.indices[col]
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// diacriticReplacer folds the accented characters that appear in French and
// Arabic-transliterated headers and enum values.
var diacriticReplacer = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a", "ä", "a",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
	"É", "e", "È", "e", "Ê", "e", "Ë", "e",
	"À", "a", "Â", "a", "Ä", "a",
	"Î", "i", "Ï", "i",
	"Ô", "o", "Ö", "o",
	"Ù", "u", "Û", "u", "Ü", "u",
	"Ç", "c",
	"'", " ", "_", " ", "-", " ",
)

// NormalizeCell lowercases, folds diacritics and collapses separators so
// header and enum matching tolerates real-world spreadsheets.
func NormalizeCell(s string) string {
	s = strings.TrimSpace(strings.ToLower(diacriticReplacer.Replace(strings.TrimSpace(s))))
	return strings.Join(strings.Fields(s), " ")
}

// IsBlankRow reports whether every cell in the row is empty. Blank rows are
// skipped and counted apart from errors.
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// sentinelPrefixes mark the template footer. Any row whose first non-empty
// cell starts with one of these ends the data section.
var sentinelPrefixes = []string{"INSTRUCTIONS", "COMMUNES"}

// IsSentinelRow reports whether the row is a template footer marker. The
// exported template appends human-readable instructions in the data columns;
// imports must stop there without erroring the remaining rows.
func IsSentinelRow(row []string) bool {
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		upper := strings.ToUpper(cell)
		for _, prefix := range sentinelPrefixes {
			if strings.HasPrefix(upper, prefix) {
				return true
			}
		}
		return false
	}
	return false
}

// excelEpoch is the zero day of Excel's 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order for free-text date cells.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"02.01.2006",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDateCell parses a date either as a spreadsheet serial number or as
// free text. It returns ok=false when the cell cannot be interpreted.
func ParseDateCell(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}

	// Serial number path: excelize returns raw serials for unformatted cells
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if serial <= 0 || serial > 200000 {
			return time.Time{}, false
		}
		days := int(serial)
		return excelEpoch.AddDate(0, 0, days), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeSex maps free-text sex values onto the M/F enum. Unrecognized
// values default to M.
func NormalizeSex(cell string) models.Sex {
	switch NormalizeCell(cell) {
	case "f", "femme", "feminin", "female", "fille":
		return models.SexFemale
	case "m", "homme", "masculin", "male", "garcon":
		return models.SexMale
	default:
		return models.SexMale
	}
}

// NormalizeDecision maps free-text decisions onto the enum, defaulting to
// pending.
func NormalizeDecision(cell string) models.Decision {
	switch NormalizeCell(cell) {
	case "accepted", "accepte", "acceptee", "oui", "valide":
		return models.DecisionAccepted
	case "refused", "refuse", "refusee", "rejete", "non":
		return models.DecisionRefused
	case "pending", "en attente", "attente", "en cours":
		return models.DecisionPending
	default:
		return models.DecisionPending
	}
}

// NormalizeStatus maps free-text triage statuses onto the enum, defaulting
// to awaiting.
func NormalizeStatus(cell string) models.ParticipantStatus {
	switch NormalizeCell(cell) {
	case "yes", "oui", "confirme", "confirmee", "confirmed":
		return models.ParticipantConfirmed
	case "no", "non", "decline", "declinee", "declined", "refuse":
		return models.ParticipantDeclined
	case "awaiting", "en attente", "attente":
		return models.ParticipantAwaiting
	default:
		return models.ParticipantAwaiting
	}
}

// NormalizeChildInSchool maps free text onto the tri-state flag; nil means
// unknown.
func NormalizeChildInSchool(cell string) *bool {
	switch NormalizeCell(cell) {
	case "oui", "yes", "true", "1", "scolarise", "scolarisee":
		v := true
		return &v
	case "non", "no", "false", "0", "non scolarise", "non scolarisee":
		v := false
		return &v
	default:
		return nil
	}
}

// NormalizeDeviceSide maps free text onto the device side enum, defaulting
// to unknown.
func NormalizeDeviceSide(cell string) models.DeviceSide {
	switch NormalizeCell(cell) {
	case "unilateral", "unilaterale", "un", "une oreille":
		return models.DeviceSideUnilateral
	case "bilateral", "bilaterale", "bi", "deux oreilles":
		return models.DeviceSideBilateral
	default:
		return models.DeviceSideUnknown
	}
}
