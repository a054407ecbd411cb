package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

func TestDetectColumns_HeaderSynonyms(t *testing.T) {
	header := []string{"CIN", "Nom", "Prénom", "Date de naissance", "Sexe", "Téléphone"}
	m := DetectColumns(header)

	row := []string{"AB1234", "Alaoui", "Sara", "2001-05-10", "F", "0600000000"}
	assert.Equal(t, "AB1234", m.Get(row, ColCIN))
	assert.Equal(t, "Alaoui", m.Get(row, ColLastName))
	assert.Equal(t, "Sara", m.Get(row, ColFirstName))
	assert.Equal(t, "2001-05-10", m.Get(row, ColBirthDate))
	assert.Equal(t, "F", m.Get(row, ColSex))
	assert.Equal(t, "0600000000", m.Get(row, ColPhone))
}

func TestDetectColumns_PositionalFallback(t *testing.T) {
	m := DetectColumns([]string{"Col A", "Col B", "Col C"})
	row := []string{"Sara", "Alaoui", "AB1234"}
	assert.Equal(t, "Sara", m.Get(row, ColFirstName))
	assert.Equal(t, "AB1234", m.Get(row, ColCIN))
}

func TestColumnMap_ShortRow(t *testing.T) {
	m := DetectColumns([]string{"Prenom", "Nom", "CIN"})
	assert.Equal(t, "", m.Get([]string{"Sara"}, ColCIN))
}

func TestNormalizeCell(t *testing.T) {
	assert.Equal(t, "date de naissance", NormalizeCell("  Date de Naissance "))
	assert.Equal(t, "telephone", NormalizeCell("Téléphone"))
	assert.Equal(t, "enfant scolarise", NormalizeCell("Enfant_Scolarisé"))
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, IsBlankRow(nil))
	assert.True(t, IsBlankRow([]string{"", "  ", ""}))
	assert.False(t, IsBlankRow([]string{"", "x"}))
}

func TestIsSentinelRow(t *testing.T) {
	assert.True(t, IsSentinelRow([]string{"INSTRUCTIONS: fill one row per person"}))
	assert.True(t, IsSentinelRow([]string{"", "Communes disponibles"}))
	assert.False(t, IsSentinelRow([]string{"Sara", "Alaoui"}))
	assert.False(t, IsSentinelRow([]string{"", ""}))
}

func TestParseDateCell_Serial(t *testing.T) {
	// 45292 is 2024-01-01 in the 1900 date system
	got, ok := ParseDateCell("45292")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateCell_FreeText(t *testing.T) {
	for _, cell := range []string{"2024-01-15", "15/01/2024", "15-01-2024", "15.01.2024"} {
		got, ok := ParseDateCell(cell)
		require.True(t, ok, cell)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got, cell)
	}
}

func TestParseDateCell_Invalid(t *testing.T) {
	for _, cell := range []string{"", "n/a", "-5", "99999999"} {
		_, ok := ParseDateCell(cell)
		assert.False(t, ok, cell)
	}
}

func TestNormalizeSex(t *testing.T) {
	assert.Equal(t, models.SexFemale, NormalizeSex("Femme"))
	assert.Equal(t, models.SexFemale, NormalizeSex("f"))
	assert.Equal(t, models.SexMale, NormalizeSex("Homme"))
	assert.Equal(t, models.SexMale, NormalizeSex("something else"))
}

func TestNormalizeDecision(t *testing.T) {
	assert.Equal(t, models.DecisionAccepted, NormalizeDecision("Accepté"))
	assert.Equal(t, models.DecisionRefused, NormalizeDecision("refusé"))
	assert.Equal(t, models.DecisionPending, NormalizeDecision("En attente"))
	assert.Equal(t, models.DecisionPending, NormalizeDecision(""))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, models.ParticipantConfirmed, NormalizeStatus("Oui"))
	assert.Equal(t, models.ParticipantDeclined, NormalizeStatus("non"))
	assert.Equal(t, models.ParticipantAwaiting, NormalizeStatus("???"))
}

func TestNormalizeChildInSchool(t *testing.T) {
	yes := NormalizeChildInSchool("Oui")
	require.NotNil(t, yes)
	assert.True(t, *yes)

	no := NormalizeChildInSchool("non")
	require.NotNil(t, no)
	assert.False(t, *no)

	assert.Nil(t, NormalizeChildInSchool(""))
	assert.Nil(t, NormalizeChildInSchool("unknown"))
}

func TestNormalizeDeviceSide(t *testing.T) {
	assert.Equal(t, models.DeviceSideUnilateral, NormalizeDeviceSide("Unilatérale"))
	assert.Equal(t, models.DeviceSideBilateral, NormalizeDeviceSide("bilateral"))
	assert.Equal(t, models.DeviceSideUnknown, NormalizeDeviceSide(""))
}
