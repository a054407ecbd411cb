package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	now := date(2026, time.June, 1)

	birthdayPassed := date(1990, time.May, 31)
	assert.Equal(t, 36, AgeAt(&birthdayPassed, now))

	birthdayToday := date(1990, time.June, 1)
	assert.Equal(t, 36, AgeAt(&birthdayToday, now))

	birthdayAhead := date(1990, time.June, 2)
	assert.Equal(t, 35, AgeAt(&birthdayAhead, now))

	assert.Equal(t, 0, AgeAt(nil, now))

	future := date(2030, time.January, 1)
	assert.Equal(t, 0, AgeAt(&future, now))
}

func TestCampaignStatus(t *testing.T) {
	c := &Campaign{
		DateStart: date(2026, time.March, 1),
		DateEnd:   date(2026, time.March, 15),
	}

	assert.Equal(t, CampaignUpcoming, c.Status(date(2026, time.February, 28)))
	assert.Equal(t, CampaignOngoing, c.Status(date(2026, time.March, 1)))
	assert.Equal(t, CampaignOngoing, c.Status(date(2026, time.March, 15)))
	assert.Equal(t, CampaignEnded, c.Status(date(2026, time.March, 16)))
}

func TestKafalaReference(t *testing.T) {
	assert.Equal(t, "KAF-2026-0042", KafalaReference(2026, 42))
	assert.Equal(t, "KAF-2026-0001", KafalaReference(2026, 1))
	assert.Equal(t, "KAF-2027-12345", KafalaReference(2027, 12345))
}

func TestKafalaHasDocument(t *testing.T) {
	var k Kafala
	assert.False(t, k.HasDocument())

	empty := ""
	k.DocumentPath = &empty
	assert.False(t, k.HasDocument())

	path := "kafala/abc.pdf"
	k.DocumentPath = &path
	assert.True(t, k.HasDocument())
}

func TestRolePermissions(t *testing.T) {
	r := &Role{Name: "agent", Permissions: []string{PermCampaignsManage, PermReportsView}}
	assert.True(t, r.HasPermission(PermCampaignsManage))
	assert.False(t, r.HasPermission(PermUsersManage))
	assert.False(t, r.IsProtected())

	admin := &Role{Name: AdminRoleName}
	assert.True(t, admin.IsProtected())
}

func TestIsKnownPermission(t *testing.T) {
	for _, key := range PermissionCatalog {
		assert.True(t, IsKnownPermission(key), key)
	}
	assert.False(t, IsKnownPermission("campaigns.delete"))
}

func TestComputeExpectedReturn(t *testing.T) {
	m := &MedicalAssistance{AssistanceDate: date(2026, time.January, 10)}
	assert.Nil(t, m.ComputeExpectedReturn())

	days := 30
	m.UsageDurationDays = &days
	expected := date(2026, time.February, 9)
	got := m.ComputeExpectedReturn()
	assert.NotNil(t, got)
	assert.Equal(t, expected, *got)
}
