package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestFinancials(t *testing.T) {
	t.Run("unit price and credit needed", func(t *testing.T) {
		unitPrice, creditNeeded := financials(10000, 5, 3)
		assert.Equal(t, 2000.00, unitPrice)
		assert.Equal(t, 6000.00, creditNeeded)
	})

	t.Run("rounding to two decimals", func(t *testing.T) {
		unitPrice, creditNeeded := financials(1000, 3, 2)
		assert.Equal(t, 333.33, unitPrice)
		assert.Equal(t, 666.66, creditNeeded)
	})

	t.Run("zero accepted yields zero, not a division error", func(t *testing.T) {
		unitPrice, creditNeeded := financials(10000, 0, 4)
		assert.Zero(t, unitPrice)
		assert.Zero(t, creditNeeded)
	})
}

func TestParticipantStats(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	participants := []*models.Participant{
		{Status: models.ParticipantAwaiting, Sex: models.SexMale, BirthDate: datePtr(2015, time.March, 10)},
		{Status: models.ParticipantConfirmed, Sex: models.SexFemale, BirthDate: datePtr(1980, time.January, 1)},
		{Status: models.ParticipantConfirmed, Sex: models.SexMale, BirthDate: datePtr(1950, time.January, 1)},
		{Status: models.ParticipantDeclined, Sex: models.SexFemale, BirthDate: nil},
	}

	stats := participantStats(participants, now)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Awaiting)
	assert.Equal(t, 2, stats.Confirmed)
	assert.Equal(t, 1, stats.Declined)
	assert.Equal(t, 2, stats.BySex.Male)
	assert.Equal(t, 2, stats.BySex.Female)
	// nil birth date counts as age 0, the 2015 child is 11
	assert.Equal(t, 2, stats.ByAge.Under15)
	assert.Equal(t, 1, stats.ByAge.From15To64)
	assert.Equal(t, 1, stats.ByAge.Over65)
}

func TestBeneficiaryStats(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	beneficiaries := []*models.Beneficiary{
		{Decision: models.DecisionAccepted, Sex: models.SexMale, BirthDate: datePtr(1961, time.June, 2)},
		{Decision: models.DecisionAccepted, Sex: models.SexFemale, BirthDate: datePtr(1961, time.May, 31)},
		{Decision: models.DecisionPending, Sex: models.SexMale, BirthDate: datePtr(2012, time.June, 2)},
		{Decision: models.DecisionRefused, Sex: "X", BirthDate: datePtr(1990, time.January, 1)},
	}

	stats := beneficiaryStats(beneficiaries, now)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Accepted)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Refused)
	// the unknown sex value is excluded from the tally but not the total
	assert.Equal(t, 2, stats.BySex.Male)
	assert.Equal(t, 1, stats.BySex.Female)
	// boundary ages: 64 on the day before the 65th birthday, 65 on it
	assert.Equal(t, 1, stats.ByAge.Under15)
	assert.Equal(t, 2, stats.ByAge.From15To64)
	assert.Equal(t, 1, stats.ByAge.Over65)
}

func TestDeviceStats(t *testing.T) {
	svc := &statsServiceImpl{unilateralFactor: 1, bilateralFactor: 2}
	beneficiaries := []*models.Beneficiary{
		{Decision: models.DecisionAccepted, DeviceSide: models.DeviceSideUnilateral},
		{Decision: models.DecisionAccepted, DeviceSide: models.DeviceSideUnilateral},
		{Decision: models.DecisionAccepted, DeviceSide: models.DeviceSideBilateral},
		// pending and refused rows never count toward loaned devices
		{Decision: models.DecisionPending, DeviceSide: models.DeviceSideBilateral},
		{Decision: models.DecisionRefused, DeviceSide: models.DeviceSideUnilateral},
		{Decision: models.DecisionAccepted, DeviceSide: models.DeviceSideUnknown},
	}

	devices := svc.deviceStats(beneficiaries)

	assert.Equal(t, 2, devices.Unilateral)
	assert.Equal(t, 1, devices.Bilateral)
	assert.Equal(t, 4, devices.DeviceCount)
}

func TestTallyAgeBoundaries(t *testing.T) {
	cases := []struct {
		age      int
		expected dto.AgeBrackets
	}{
		{0, dto.AgeBrackets{Under15: 1}},
		{14, dto.AgeBrackets{Under15: 1}},
		{15, dto.AgeBrackets{From15To64: 1}},
		{64, dto.AgeBrackets{From15To64: 1}},
		{65, dto.AgeBrackets{Over65: 1}},
		{90, dto.AgeBrackets{Over65: 1}},
	}
	for _, tc := range cases {
		var b dto.AgeBrackets
		tallyAge(&b, tc.age)
		assert.Equal(t, tc.expected, b, "age %d", tc.age)
	}
}
