package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonvc/tripbudget/internal/ledger"
)

func TestAggregate(t *testing.T) {
	type testCase struct {
		name          string
		expenses      []ledger.Expense
		wantNoData    bool
		wantTotal     int64
		wantOrder     []string
		wantSubtotals map[string]int64
	}

	tests := []testCase{
		{
			name:       "Empty",
			expenses:   nil,
			wantNoData: true,
			wantOrder:  []string{},
		},
		{
			name: "FirstSeenOrder",
			expenses: []ledger.Expense{
				{Category: "Hotel", Amount: 8000, Description: "4 nights @ ₹2000"},
				{Category: "Food", Amount: 2500, Description: "5 days @ ₹500"},
				{Category: "Hotel", Amount: 1500, Description: "1 nights @ ₹1500"},
				{Category: "Transport", Amount: 450, Description: "300 km via train"},
			},
			wantTotal: 12450,
			wantOrder: []string{"Hotel", "Food", "Transport"},
			wantSubtotals: map[string]int64{
				"Hotel":     9500,
				"Food":      2500,
				"Transport": 450,
			},
		},
		{
			name: "NotAlphabetical",
			expenses: []ledger.Expense{
				{Category: "Transport", Amount: 10},
				{Category: "Food", Amount: 20},
				{Category: "Food", Amount: 30},
			},
			wantTotal:     60,
			wantOrder:     []string{"Transport", "Food"},
			wantSubtotals: map[string]int64{"Transport": 10, "Food": 50},
		},
		{
			name: "ZeroAmountsStillHaveData",
			expenses: []ledger.Expense{
				{Category: "Food", Amount: 0, Description: "0 days @ ₹500"},
			},
			wantNoData:    false,
			wantTotal:     0,
			wantOrder:     []string{"Food"},
			wantSubtotals: map[string]int64{"Food": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Aggregate(tt.expenses)

			assert.Equal(t, tt.wantNoData, got.NoData)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, tt.wantOrder, got.CategoryNames())

			var sum int64
			for name, want := range tt.wantSubtotals {
				ct, ok := got.Category(name)
				require.True(t, ok, "missing category %s", name)
				assert.Equal(t, want, ct.Subtotal)
				sum += ct.Subtotal
			}
			assert.Equal(t, got.Total, sum)
		})
	}
}

func TestAggregate_ItemsKeepEncounterOrder(t *testing.T) {
	got := ledger.Aggregate([]ledger.Expense{
		{Category: "Hotel", Amount: 1, Description: "first"},
		{Category: "Food", Amount: 2, Description: "other"},
		{Category: "Hotel", Amount: 3, Description: "second"},
	})

	hotel, ok := got.Category("Hotel")
	require.True(t, ok)
	assert.Equal(t, []ledger.Item{
		{Amount: 1, Description: "first"},
		{Amount: 3, Description: "second"},
	}, hotel.Items)
}
