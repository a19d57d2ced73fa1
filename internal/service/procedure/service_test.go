package procedure

import (
	"context"
	"testing"

	"github.com/simon1400/barbitch-admin/internal/domain/procedure"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	sales []procedure.Sale
}

func (f *fakeSource) SalesWithOffers(context.Context, period.Period) ([]procedure.Sale, error) {
	return f.sales, nil
}

func TestStatsGroupsByOffer(t *testing.T) {
	source := &fakeSource{
		sales: []procedure.Sale{
			{OfferTitle: "Manikúra", StaffShare: 300, SalonShare: 400, Tip: 50},
			{OfferTitle: "Manikúra", StaffShare: 300, SalonShare: 400, Tip: 0},
			{OfferTitle: "Střih", StaffShare: 500, SalonShare: 700, Tip: 100},
			{StaffShare: 100, SalonShare: 100}, // no catalog entry
		},
	}
	svc := NewProcedureService(source)

	result, err := svc.Stats(context.Background(), "2025-03")
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalCount)
	assert.Equal(t, 2850.0, result.TotalRevenue)
	require.Len(t, result.Procedures, 3)

	// Sorted by revenue descending.
	assert.Equal(t, procedure.Stats{Name: "Manikúra", Count: 2, TotalRevenue: 1450}, result.Procedures[0])
	assert.Equal(t, procedure.Stats{Name: "Střih", Count: 1, TotalRevenue: 1300}, result.Procedures[1])
	assert.Equal(t, procedure.Stats{Name: procedure.UntitledOffer, Count: 1, TotalRevenue: 200}, result.Procedures[2])
}
