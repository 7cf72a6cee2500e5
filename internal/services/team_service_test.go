package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

func newTeamTestService(t *testing.T) TeamService {
	t.Helper()
	return NewTeamService(repository.NewTeamRepository(setupTestDB(t)))
}

func TestUpsertPerformanceCreatesThenUpdates(t *testing.T) {
	svc := newTeamTestService(t)

	member, violations, err := svc.UpsertPerformance(3, "2026-08", forms.PerformanceForm{
		Sales:  "1500000",
		Target: "2000000",
		Deals:  "5",
		Leads:  "10",
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, 50.0, member.ConversionRate)
	firstID := member.ID

	// Same user and period updates the existing row.
	member, violations, err = svc.UpsertPerformance(3, "2026-08", forms.PerformanceForm{
		Sales:  "1800000",
		Target: "2000000",
		Deals:  "2",
		Leads:  "3",
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, firstID, member.ID)
	assert.Equal(t, 66.67, member.ConversionRate)

	board, err := svc.GetBoard("2026-08")
	require.NoError(t, err)
	require.Len(t, board, 1)
}

func TestUpsertPerformanceRejectsGarbage(t *testing.T) {
	svc := newTeamTestService(t)

	_, violations, err := svc.UpsertPerformance(3, "2026-08", forms.PerformanceForm{
		Sales: "a lot",
		Deals: "-2",
	})
	require.NoError(t, err)
	assert.Contains(t, violations, "sales")
	assert.Contains(t, violations, "deals")
}

// The stored conversion rate is a display cache; reads recompute it from
// deals and leads.
func TestGetBoardRederivesConversionRate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTeamService(repository.NewTeamRepository(db))

	row := &models.TeamMember{UserID: 1, Period: "2026-07", Deals: 1, Leads: 4, ConversionRate: 99}
	require.NoError(t, db.Create(row).Error)

	board, err := svc.GetBoard("2026-07")
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 25.0, board[0].ConversionRate)

	member, err := svc.GetMember(row.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, member.ConversionRate)
}

func TestZeroLeadsGivesZeroRate(t *testing.T) {
	svc := newTeamTestService(t)

	member, violations, err := svc.UpsertPerformance(4, "2026-08", forms.PerformanceForm{
		Sales:  "0",
		Target: "100000",
		Deals:  "3",
		Leads:  "0",
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, 0.0, member.ConversionRate)
}
