package tools_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/logging"
	"github.com/simonvc/tripbudget/internal/store"
	"github.com/simonvc/tripbudget/internal/tools"
)

func newFacade(t *testing.T) (*tools.Facade, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "trip_budget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return tools.New(st, ledger.DefaultRates(), nil), st
}

func listAll(t *testing.T, st *store.Store) []ledger.Expense {
	t.Helper()

	got, err := st.ListAll(context.Background())
	require.NoError(t, err)
	return got
}

func requireError(t *testing.T, res tools.Result, kind tools.ErrorKind) *tools.ErrorResult {
	t.Helper()

	er, ok := res.(*tools.ErrorResult)
	require.True(t, ok, "expected error result, got %T: %v", res, res)
	assert.Equal(t, tools.StatusError, er.ToolStatus())
	assert.Equal(t, kind, er.Kind)
	return er
}

func TestFacade_FoodCost(t *testing.T) {
	tests := []struct {
		days, perDay int64
	}{
		{5, 500},
		{0, 500},
		{3, 0},
		{1, 1},
	}

	for _, tt := range tests {
		f, st := newFacade(t)

		res := f.FoodCost(context.Background(), tt.days, tt.perDay)

		cr, ok := res.(*tools.CostResult)
		require.True(t, ok, "got %T: %v", res, res)
		assert.Equal(t, tools.StatusSuccess, cr.Status)
		assert.Equal(t, tt.days*tt.perDay, cr.Amount)
		assert.Equal(t, ledger.CategoryFood, cr.Category)
		assert.Equal(t, "INR", cr.Currency)

		rows := listAll(t, st)
		require.Len(t, rows, 1)
		assert.Equal(t, ledger.CategoryFood, rows[0].Category)
		assert.Equal(t, cr.Amount, rows[0].Amount)
	}
}

func TestFacade_HotelCost(t *testing.T) {
	f, st := newFacade(t)

	res := f.HotelCost(context.Background(), 4, 2000)

	cr, ok := res.(*tools.CostResult)
	require.True(t, ok, "got %T: %v", res, res)
	assert.Equal(t, int64(8000), cr.Amount)
	assert.Equal(t, ledger.CategoryHotel, cr.Category)
	assert.Equal(t, "4 nights × ₹2000/night", cr.Details)

	rows := listAll(t, st)
	require.Len(t, rows, 1)
	assert.Equal(t, "4 nights @ ₹2000", rows[0].Description)
}

func TestFacade_TransportCost(t *testing.T) {
	tests := []struct {
		km       int64
		typ      string
		want     int64
		wantRate float64
	}{
		{300, "train", 450, 1.5},
		{7, "train", 10, 1.5},
		{100, "bus", 200, 2},
		{12, "CAB", 120, 10},
		{1000, "Flight", 6000, 6},
		{0, "bus", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			f, st := newFacade(t)

			res := f.TransportCost(context.Background(), tt.km, tt.typ)

			tr, ok := res.(*tools.TransportResult)
			require.True(t, ok, "got %T: %v", res, res)
			assert.Equal(t, tt.want, tr.Amount)
			assert.Equal(t, tt.km, tr.DistanceKM)
			assert.Equal(t, tt.typ, tr.TransportType)
			assert.InDelta(t, tt.wantRate, tr.RatePerKM, 1e-9)

			rows := listAll(t, st)
			require.Len(t, rows, 1)
			assert.Equal(t, ledger.CategoryTransport, rows[0].Category)
			assert.Equal(t, tt.want, rows[0].Amount)
		})
	}
}

func TestFacade_TripScenario(t *testing.T) {
	ctx := context.Background()
	f, st := newFacade(t)

	food := f.FoodCost(ctx, 5, 500).(*tools.CostResult)
	assert.Equal(t, int64(2500), food.Amount)
	assert.Equal(t, "5 days × ₹500/day", food.Details)

	hotel := f.HotelCost(ctx, 4, 2000).(*tools.CostResult)
	assert.Equal(t, int64(8000), hotel.Amount)

	train := f.TransportCost(ctx, 300, "train").(*tools.TransportResult)
	assert.Equal(t, int64(450), train.Amount)
	assert.Equal(t, "300 km × ₹1.5/km via train", train.Details)

	sum, ok := f.GetExpenseSummary(ctx).(*tools.SummaryResult)
	require.True(t, ok)
	assert.False(t, sum.NoData)
	assert.Equal(t, int64(10950), sum.Total)
	assert.Equal(t, "INR", sum.Currency)
	require.Len(t, sum.Categories, 3)
	for i, want := range []struct {
		category string
		subtotal int64
	}{
		{ledger.CategoryFood, 2500},
		{ledger.CategoryHotel, 8000},
		{ledger.CategoryTransport, 450},
	} {
		ct := sum.Categories[i]
		assert.Equal(t, want.category, ct.Category)
		assert.Equal(t, want.subtotal, ct.Subtotal)
		require.Len(t, ct.Items, 1)
		assert.Equal(t, want.subtotal, ct.Items[0].Amount)
	}

	budget := f.TotalBudget(ctx).(*tools.BudgetResult)
	assert.False(t, budget.NoData)
	assert.Contains(t, budget.Report, "₹10,950")
	assert.Less(t, strings.Index(budget.Report, "Food:"), strings.Index(budget.Report, "Hotel:"))
	assert.Less(t, strings.Index(budget.Report, "Hotel:"), strings.Index(budget.Report, "Transport:"))

	// An unknown transport type leaves the ledger untouched.
	before := listAll(t, st)
	er := requireError(t, f.TransportCost(ctx, 100, "rocket"), tools.KindValidation)
	assert.Equal(t, []string{"bus", "train", "cab", "flight"}, er.ValidOptions)
	for _, name := range []string{"bus", "train", "cab", "flight"} {
		assert.Contains(t, er.Message, name)
	}
	assert.Contains(t, er.Message, "rocket")
	assert.Equal(t, before, listAll(t, st))
	assert.Len(t, before, 3)
}

func TestFacade_EmptyLedger(t *testing.T) {
	ctx := context.Background()
	f, _ := newFacade(t)

	budget, ok := f.TotalBudget(ctx).(*tools.BudgetResult)
	require.True(t, ok)
	assert.True(t, budget.NoData)
	assert.Equal(t, ledger.NoDataMessage, budget.Report)
	assert.NotContains(t, budget.Report, "TOTAL")

	sum, ok := f.GetExpenseSummary(ctx).(*tools.SummaryResult)
	require.True(t, ok)
	assert.True(t, sum.NoData)
	assert.Zero(t, sum.Total)
	assert.NotNil(t, sum.Categories)
	assert.Empty(t, sum.Categories)
	assert.Equal(t, tools.NoExpensesMessage, sum.Message)

	raw, err := json.Marshal(sum)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","total":0,"categories":[],"currency":"INR","no_data":true,"message":"No expenses recorded"}`, string(raw))
}

func TestFacade_ClearAllExpenses(t *testing.T) {
	ctx := context.Background()
	f, st := newFacade(t)

	f.FoodCost(ctx, 2, 300)
	f.TransportCost(ctx, 10, "cab")

	for i := 0; i < 2; i++ {
		res, ok := f.ClearAllExpenses(ctx).(*tools.ClearResult)
		require.True(t, ok, "clear #%d", i+1)
		assert.Equal(t, tools.ClearedMessage, res.Message)
		assert.Empty(t, listAll(t, st))
	}
}

func TestFacade_FirstSeenOrder(t *testing.T) {
	ctx := context.Background()
	f, st := newFacade(t)

	for _, e := range []struct {
		category string
		amount   int64
	}{
		{ledger.CategoryHotel, 3000},
		{ledger.CategoryFood, 400},
		{ledger.CategoryHotel, 1500},
		{ledger.CategoryTransport, 90},
	} {
		_, err := st.Append(ctx, e.category, e.amount, "x")
		require.NoError(t, err)
	}

	sum := f.GetExpenseSummary(ctx).(*tools.SummaryResult)

	var names []string
	for _, ct := range sum.Categories {
		names = append(names, ct.Category)
	}
	assert.Equal(t, []string{"Hotel", "Food", "Transport"}, names)
	assert.Equal(t, int64(4500), sum.Categories[0].Subtotal)
	assert.Equal(t, int64(400), sum.Categories[1].Subtotal)
	assert.Equal(t, int64(90), sum.Categories[2].Subtotal)
	assert.Equal(t, int64(4990), sum.Total)
}

func TestFacade_RejectsBadNumbers(t *testing.T) {
	ctx := context.Background()
	f, st := newFacade(t)

	tests := []struct {
		name string
		call func() tools.Result
	}{
		{"NegativeDays", func() tools.Result { return f.FoodCost(ctx, -1, 500) }},
		{"NegativeCostPerDay", func() tools.Result { return f.FoodCost(ctx, 3, -500) }},
		{"NegativeNights", func() tools.Result { return f.HotelCost(ctx, -2, 100) }},
		{"NegativePrice", func() tools.Result { return f.HotelCost(ctx, 2, -100) }},
		{"NegativeDistance", func() tools.Result { return f.TransportCost(ctx, -5, "bus") }},
		{"FoodOverflow", func() tools.Result { return f.FoodCost(ctx, math.MaxInt64, 2) }},
		{"HotelOverflow", func() tools.Result { return f.HotelCost(ctx, 2, math.MaxInt64) }},
		{"TransportOverflow", func() tools.Result { return f.TransportCost(ctx, math.MaxInt64, "cab") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireError(t, tt.call(), tools.KindValidation)
			assert.Empty(t, listAll(t, st))
		})
	}
}

func TestFacade_StorageFailures(t *testing.T) {
	storageErr := &ledger.StorageError{Op: "insert expense", Err: errors.New("disk I/O error")}

	tests := []struct {
		name       string
		setupMock  func(m *tools.MockLedger)
		call       func(f *tools.Facade) tools.Result
		wantPrefix string
	}{
		{
			name: "FoodAppend",
			setupMock: func(m *tools.MockLedger) {
				m.EXPECT().Append(gomock.Any(), ledger.CategoryFood, int64(2500), "5 days @ ₹500").Return(int64(0), storageErr)
			},
			call:       func(f *tools.Facade) tools.Result { return f.FoodCost(context.Background(), 5, 500) },
			wantPrefix: "Failed to calculate food cost: ",
		},
		{
			name: "TransportAppend",
			setupMock: func(m *tools.MockLedger) {
				m.EXPECT().Append(gomock.Any(), ledger.CategoryTransport, int64(450), "300 km via train").Return(int64(0), storageErr)
			},
			call:       func(f *tools.Facade) tools.Result { return f.TransportCost(context.Background(), 300, "train") },
			wantPrefix: "Failed to calculate transport cost: ",
		},
		{
			name: "SummaryList",
			setupMock: func(m *tools.MockLedger) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, storageErr)
			},
			call:       func(f *tools.Facade) tools.Result { return f.GetExpenseSummary(context.Background()) },
			wantPrefix: "Failed to get expense summary: ",
		},
		{
			name: "BudgetList",
			setupMock: func(m *tools.MockLedger) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, storageErr)
			},
			call:       func(f *tools.Facade) tools.Result { return f.TotalBudget(context.Background()) },
			wantPrefix: "Failed to fetch total budget: ",
		},
		{
			name: "Clear",
			setupMock: func(m *tools.MockLedger) {
				m.EXPECT().ClearAll(gomock.Any()).Return(storageErr)
			},
			call:       func(f *tools.Facade) tools.Result { return f.ClearAllExpenses(context.Background()) },
			wantPrefix: "Failed to clear expenses: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := tools.NewMockLedger(ctrl)
			tt.setupMock(m)

			er := requireError(t, tt.call(tools.New(m, ledger.DefaultRates(), nil)), tools.KindStorage)
			assert.True(t, strings.HasPrefix(er.Message, tt.wantPrefix), er.Message)
			assert.Contains(t, er.Message, "disk I/O error")
		})
	}
}

func TestFacade_InvalidTransportNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any call to the ledger fails the test.
	m := tools.NewMockLedger(ctrl)
	f := tools.New(m, ledger.DefaultRates(), nil)

	for _, typ := range []string{"rocket", "", "bicycle", "trains"} {
		requireError(t, f.TransportCost(context.Background(), 100, typ), tools.KindValidation)
	}
}

func TestFacade_RecoversPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := tools.NewMockLedger(ctrl)
	m.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(context.Context) ([]ledger.Expense, error) {
		panic("database handle is nil")
	})

	er := requireError(t, tools.New(m, ledger.DefaultRates(), nil).GetExpenseSummary(context.Background()), tools.KindInternal)
	assert.Contains(t, er.Message, "database handle is nil")
}

func TestFacade_LogsCallID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New("debug", "json", &buf)
	require.NoError(t, err)

	st, err := store.Open(filepath.Join(t.TempDir(), "trip_budget.db"))
	require.NoError(t, err)
	defer st.Close()

	f := tools.New(st, ledger.DefaultRates(), logger)
	f.FoodCost(tools.WithCallID(context.Background(), "call-123"), 1, 100)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "call-123", rec["call_id"])
	assert.Equal(t, tools.ToolFoodCost, rec["tool"])
	assert.Equal(t, logging.ComponentTools, rec["component"])
}
