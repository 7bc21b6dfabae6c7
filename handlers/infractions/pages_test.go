package infractions

import (
	"strings"
	"testing"
	"time"

	"moderation-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, current, total := paginate(items, 2, 3)
	assert.Equal(t, []int{4, 5, 6}, page)
	assert.Equal(t, 2, current)
	assert.Equal(t, 3, total)

	page, current, _ = paginate(items, 9, 3)
	assert.Equal(t, []int{7}, page)
	assert.Equal(t, 3, current)

	page, current, _ = paginate(items, 0, 3)
	assert.Equal(t, []int{1, 2, 3}, page)
	assert.Equal(t, 1, current)

	page, _, total = paginate([]int{}, 1, 3)
	assert.Empty(t, page)
	assert.Equal(t, 0, total)
}

func TestRenderInfractionsPage(t *testing.T) {
	var infs []model.Infraction
	for id := 1; id <= 6; id++ {
		infs = append(infs, model.Infraction{ID: id, Severity: model.SeverityLow, Punishment: model.PunishmentStrike})
	}

	content, page, total := renderInfractionsPage(infs, 2)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, total)
	assert.Equal(t, "ID: 6\nSeverity: Low\nPunishment: Strike\nDuration: 0", content)

	content, _, _ = renderInfractionsPage(infs, 1)
	assert.Equal(t, 5, strings.Count(content, "ID: "))
}

func TestRenderUserRecordsPage(t *testing.T) {
	at := time.Unix(1700000000, 0)
	records := []model.UserInfraction{{ID: 3, UserID: "111", InfractionID: 7, CreatedAt: at}}

	content, page, total := renderUserRecordsPage(records, 1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, total)
	assert.Equal(t, "<@111> Case ID: 3\nInfraction ID: 7\nCreated at: <t:1700000000:F>", content)
}

func TestBuildInfraction(t *testing.T) {
	inf, err := buildInfraction(7, "high", "ban", 0)
	require.NoError(t, err)
	assert.Equal(t, model.Infraction{ID: 7, Severity: model.SeverityHigh, Punishment: model.PunishmentBan}, inf)

	inf, err = buildInfraction(8, "medium", "timeout", 3600)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), inf.Duration)

	tests := []struct {
		name       string
		id         int64
		severity   string
		punishment string
		duration   int64
	}{
		{"zero id", 0, "low", "ban", 0},
		{"unknown severity", 1, "extreme", "ban", 0},
		{"unknown punishment", 1, "low", "mute", 0},
		{"negative duration", 1, "low", "strike", -5},
		{"timeout without duration", 1, "low", "timeout", 0},
		{"timeout too long", 1, "low", "timeout", 29 * 24 * 3600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildInfraction(tt.id, tt.severity, tt.punishment, tt.duration)
			assert.Error(t, err)
		})
	}
}

func TestIsPaginationID(t *testing.T) {
	assert.True(t, IsPaginationID("inf_list:2"))
	assert.True(t, IsPaginationID("inf_user:3:111"))
	assert.False(t, IsPaginationID("inf_list_indicator"))
	assert.False(t, IsPaginationID("other:1"))
}
