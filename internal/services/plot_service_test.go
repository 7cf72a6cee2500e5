package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

func newPlotTestService(t *testing.T) (PlotService, repository.PlotRepository) {
	t.Helper()
	repo := repository.NewPlotRepository(setupTestDB(t))
	return NewPlotService(repo), repo
}

func TestCreatePlotDerivesBalance(t *testing.T) {
	svc, _ := newPlotTestService(t)

	plot := &models.PlotListing{
		PlotNumber:     "A-101",
		ProjectName:    "Green Meadows",
		Status:         string(models.PlotOpen),
		TotalAmount:    1200000,
		AmountReceived: 200000,
		BalanceAmount:  5, // client-sent garbage, must be overwritten
		CreatedBy:      1,
	}
	require.NoError(t, svc.CreatePlot(plot))
	assert.Equal(t, 1000000.0, plot.BalanceAmount)
}

func TestRecordPaymentReducesBalance(t *testing.T) {
	svc, _ := newPlotTestService(t)

	plot := &models.PlotListing{
		PlotNumber:  "B-204",
		ProjectName: "Green Meadows",
		TotalAmount: 500000,
		CreatedBy:   1,
	}
	require.NoError(t, svc.CreatePlot(plot))

	got, err := svc.RecordPayment(plot.ID, 150000)
	require.NoError(t, err)
	assert.Equal(t, 150000.0, got.AmountReceived)
	assert.Equal(t, 350000.0, got.BalanceAmount)
}

func TestRecordPaymentNeverGoesNegative(t *testing.T) {
	svc, _ := newPlotTestService(t)

	plot := &models.PlotListing{
		PlotNumber:  "C-007",
		ProjectName: "Green Meadows",
		TotalAmount: 1000000,
		CreatedBy:   1,
	}
	require.NoError(t, svc.CreatePlot(plot))

	got, err := svc.RecordPayment(plot.ID, 1200000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.BalanceAmount)
}

// A stored balance that drifted from total/received is repaired on read.
func TestGetPlotRepairsDriftedBalance(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPlotRepository(db)
	svc := NewPlotService(repo)

	plot := &models.PlotListing{
		PlotNumber:     "D-310",
		ProjectName:    "Green Meadows",
		TotalAmount:    800000,
		AmountReceived: 300000,
		BalanceAmount:  999999,
		CreatedBy:      1,
	}
	require.NoError(t, db.Create(plot).Error)

	got, err := svc.GetPlotByID(plot.ID)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, got.BalanceAmount)

	// The repair was written back, not just rendered.
	stored, err := repo.GetByID(plot.ID)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, stored.BalanceAmount)
}

func TestUpdateFinancialsIgnoresClientBalance(t *testing.T) {
	svc, _ := newPlotTestService(t)

	plot := &models.PlotListing{
		PlotNumber:  "E-115",
		ProjectName: "Green Meadows",
		CreatedBy:   1,
	}
	require.NoError(t, svc.CreatePlot(plot))

	got, violations, err := svc.UpdateFinancials(plot.ID, forms.PlotFinancialForm{
		TotalAmount:    "750000",
		BookingAmount:  "50000",
		AmountReceived: "250000",
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, 500000.0, got.BalanceAmount)
}

func TestUpdateFinancialsRejectsGarbage(t *testing.T) {
	svc, _ := newPlotTestService(t)

	plot := &models.PlotListing{
		PlotNumber:  "F-001",
		ProjectName: "Green Meadows",
		CreatedBy:   1,
	}
	require.NoError(t, svc.CreatePlot(plot))

	_, violations, err := svc.UpdateFinancials(plot.ID, forms.PlotFinancialForm{
		TotalAmount:    "lots",
		AmountReceived: "-5",
	})
	require.NoError(t, err)
	assert.Contains(t, violations, "total_amount")
	assert.Contains(t, violations, "amount_received")
}

func TestGetAllPlotsRederivesEveryBalance(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPlotRepository(db)
	svc := NewPlotService(repo)

	rows := []models.PlotListing{
		{PlotNumber: "G-1", ProjectName: "P", TotalAmount: 100, AmountReceived: 40, BalanceAmount: 0, CreatedBy: 1},
		{PlotNumber: "G-2", ProjectName: "P", TotalAmount: 200, AmountReceived: 250, BalanceAmount: -50, CreatedBy: 1},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	plots, err := svc.GetAllPlots()
	require.NoError(t, err)
	require.Len(t, plots, 2)
	assert.Equal(t, 60.0, plots[0].BalanceAmount)
	assert.Equal(t, 0.0, plots[1].BalanceAmount)
}
