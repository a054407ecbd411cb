package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

func TestStatusCondition(t *testing.T) {
	cond, ok := statusCondition(models.CampaignUpcoming)
	assert.True(t, ok)
	assert.Equal(t, "c.date_start > CURRENT_DATE", cond)

	cond, ok = statusCondition(models.CampaignOngoing)
	assert.True(t, ok)
	assert.Equal(t, "c.date_start <= CURRENT_DATE AND c.date_end >= CURRENT_DATE", cond)

	cond, ok = statusCondition(models.CampaignEnded)
	assert.True(t, ok)
	assert.Equal(t, "c.date_end < CURRENT_DATE", cond)

	_, ok = statusCondition("")
	assert.False(t, ok)
	_, ok = statusCondition("finished")
	assert.False(t, ok)
}

func TestBuildCampaignWhere(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		where, args := buildCampaignWhere(CampaignFilter{})
		assert.Equal(t, "1=1", where)
		assert.Empty(t, args)
	})

	t.Run("text search binds one argument for both columns", func(t *testing.T) {
		where, args := buildCampaignWhere(CampaignFilter{Query: "agadir"})
		assert.Equal(t, "1=1 AND (c.name ILIKE $1 OR c.location ILIKE $1)", where)
		assert.Equal(t, []interface{}{"%agadir%"}, args)
	})

	t.Run("status is a date predicate, not a bound argument", func(t *testing.T) {
		where, args := buildCampaignWhere(CampaignFilter{Status: models.CampaignOngoing})
		assert.Equal(t, "1=1 AND c.date_start <= CURRENT_DATE AND c.date_end >= CURRENT_DATE", where)
		assert.Empty(t, args)
	})

	t.Run("year filters on the start date", func(t *testing.T) {
		where, args := buildCampaignWhere(CampaignFilter{Year: 2026})
		assert.Equal(t, "1=1 AND EXTRACT(YEAR FROM c.date_start) = $1", where)
		assert.Equal(t, []interface{}{2026}, args)
	})

	t.Run("combined filters keep placeholders in sequence", func(t *testing.T) {
		where, args := buildCampaignWhere(CampaignFilter{
			Query:            "dist",
			AssistanceTypeID: 7,
			Year:             2025,
			Status:           models.CampaignEnded,
		})
		assert.Equal(t,
			"1=1 AND (c.name ILIKE $1 OR c.location ILIKE $1) AND c.assistance_type_id = $2 AND EXTRACT(YEAR FROM c.date_start) = $3 AND c.date_end < CURRENT_DATE",
			where)
		assert.Equal(t, []interface{}{"%dist%", int64(7), 2025}, args)
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		where, args := buildCampaignWhere(CampaignFilter{Status: "archived"})
		assert.Equal(t, "1=1", where)
		assert.Empty(t, args)
	})
}
