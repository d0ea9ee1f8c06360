package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime/debug"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/logging"
)

// Tool names as exposed to agents.
const (
	ToolFoodCost          = "food_cost"
	ToolHotelCost         = "hotel_cost"
	ToolTransportCost     = "transport_cost"
	ToolTotalBudget       = "total_budget"
	ToolClearAllExpenses  = "clear_all_expenses"
	ToolGetExpenseSummary = "get_expense_summary"
)

// Names lists every tool in a stable order.
var Names = []string{
	ToolFoodCost,
	ToolHotelCost,
	ToolTransportCost,
	ToolTotalBudget,
	ToolClearAllExpenses,
	ToolGetExpenseSummary,
}

const ClearedMessage = "All expenses have been cleared. Ready for a new trip!"

const NoExpensesMessage = "No expenses recorded"

//go:generate mockgen -source=facade.go -destination=facade_mock.go -package=tools

// Ledger is the part of the store the tools need.
type Ledger interface {
	Append(ctx context.Context, category string, amount int64, description string) (int64, error)
	ListAll(ctx context.Context) ([]ledger.Expense, error)
	ClearAll(ctx context.Context) error
}

// Invoker runs the six trip budget tools. A Facade runs them against a local
// ledger; client.Client runs them against a remote server.
type Invoker interface {
	FoodCost(ctx context.Context, days, costPerDay int64) Result
	HotelCost(ctx context.Context, nights, pricePerNight int64) Result
	TransportCost(ctx context.Context, distanceKM int64, transportType string) Result
	TotalBudget(ctx context.Context) Result
	ClearAllExpenses(ctx context.Context) Result
	GetExpenseSummary(ctx context.Context) Result
}

// Facade is the tool boundary. Every method returns a Result and never
// returns an error or panics.
type Facade struct {
	store  Ledger
	rates  ledger.RateTable
	logger *slog.Logger
}

var _ Invoker = (*Facade)(nil)

func New(store Ledger, rates ledger.RateTable, logger *slog.Logger) *Facade {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Facade{
		store:  store,
		rates:  rates,
		logger: logging.WithComponent(logger, logging.ComponentTools),
	}
}

// Rates returns the transport tariff the facade was built with.
func (f *Facade) Rates() ledger.RateTable { return f.rates }

func (f *Facade) FoodCost(ctx context.Context, days, costPerDay int64) Result {
	return f.run(ctx, ToolFoodCost, "Failed to calculate food cost", func(ctx context.Context) (Result, error) {
		if err := nonNegative("days", days); err != nil {
			return nil, err
		}
		if err := nonNegative("cost_per_day", costPerDay); err != nil {
			return nil, err
		}
		total, err := multiply(days, costPerDay)
		if err != nil {
			return nil, err
		}

		desc := fmt.Sprintf("%d days @ %s%d", days, ledger.CurrencySymbol, costPerDay)
		if _, err := f.store.Append(ctx, ledger.CategoryFood, total, desc); err != nil {
			return nil, err
		}
		return &CostResult{
			Status:   StatusSuccess,
			Category: ledger.CategoryFood,
			Amount:   total,
			Currency: ledger.Currency,
			Details:  fmt.Sprintf("%d days × %s%d/day", days, ledger.CurrencySymbol, costPerDay),
		}, nil
	})
}

func (f *Facade) HotelCost(ctx context.Context, nights, pricePerNight int64) Result {
	return f.run(ctx, ToolHotelCost, "Failed to calculate hotel cost", func(ctx context.Context) (Result, error) {
		if err := nonNegative("nights", nights); err != nil {
			return nil, err
		}
		if err := nonNegative("price_per_night", pricePerNight); err != nil {
			return nil, err
		}
		total, err := multiply(nights, pricePerNight)
		if err != nil {
			return nil, err
		}

		desc := fmt.Sprintf("%d nights @ %s%d", nights, ledger.CurrencySymbol, pricePerNight)
		if _, err := f.store.Append(ctx, ledger.CategoryHotel, total, desc); err != nil {
			return nil, err
		}
		return &CostResult{
			Status:   StatusSuccess,
			Category: ledger.CategoryHotel,
			Amount:   total,
			Currency: ledger.Currency,
			Details:  fmt.Sprintf("%d nights × %s%d/night", nights, ledger.CurrencySymbol, pricePerNight),
		}, nil
	})
}

// TransportCost prices a journey from the rate table. The cost is truncated
// toward zero, so 7 km by train at 1.5 costs 10.
func (f *Facade) TransportCost(ctx context.Context, distanceKM int64, transportType string) Result {
	return f.run(ctx, ToolTransportCost, "Failed to calculate transport cost", func(ctx context.Context) (Result, error) {
		rate, ok := f.rates.Lookup(transportType)
		if !ok {
			return nil, &ledger.ValidationError{
				Field: "transport_type",
				Err:   fmt.Errorf("%w %q", ledger.ErrInvalidTransportType, transportType),
				Valid: f.rates.Names(),
			}
		}
		if err := nonNegative("distance_km", distanceKM); err != nil {
			return nil, err
		}
		cost, err := ledger.TransportCost(distanceKM, rate)
		if err != nil {
			return nil, &ledger.ValidationError{Field: "distance_km", Err: err}
		}

		desc := fmt.Sprintf("%d km via %s", distanceKM, transportType)
		if _, err := f.store.Append(ctx, ledger.CategoryTransport, cost, desc); err != nil {
			return nil, err
		}
		return &TransportResult{
			Status:        StatusSuccess,
			Category:      ledger.CategoryTransport,
			Amount:        cost,
			TransportType: transportType,
			DistanceKM:    distanceKM,
			RatePerKM:     rate.InexactFloat64(),
			Currency:      ledger.Currency,
			Details:       fmt.Sprintf("%d km × %s%s/km via %s", distanceKM, ledger.CurrencySymbol, rate, transportType),
		}, nil
	})
}

func (f *Facade) TotalBudget(ctx context.Context) Result {
	return f.run(ctx, ToolTotalBudget, "Failed to fetch total budget", func(ctx context.Context) (Result, error) {
		summary, err := f.summarize(ctx)
		if err != nil {
			return nil, err
		}
		return &BudgetResult{
			Status: StatusSuccess,
			NoData: summary.NoData,
			Report: ledger.RenderReport(summary),
		}, nil
	})
}

func (f *Facade) ClearAllExpenses(ctx context.Context) Result {
	return f.run(ctx, ToolClearAllExpenses, "Failed to clear expenses", func(ctx context.Context) (Result, error) {
		if err := f.store.ClearAll(ctx); err != nil {
			return nil, err
		}
		return &ClearResult{Status: StatusSuccess, Message: ClearedMessage}, nil
	})
}

func (f *Facade) GetExpenseSummary(ctx context.Context) Result {
	return f.run(ctx, ToolGetExpenseSummary, "Failed to get expense summary", func(ctx context.Context) (Result, error) {
		summary, err := f.summarize(ctx)
		if err != nil {
			return nil, err
		}
		res := &SummaryResult{
			Status:     StatusSuccess,
			Total:      summary.Total,
			Categories: summary.Categories,
			Currency:   ledger.Currency,
			NoData:     summary.NoData,
		}
		if summary.NoData {
			res.Message = NoExpensesMessage
		}
		return res, nil
	})
}

func (f *Facade) summarize(ctx context.Context) (ledger.Summary, error) {
	expenses, err := f.store.ListAll(ctx)
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Aggregate(expenses), nil
}

// run executes one tool body under a call id, turning errors and panics into
// an ErrorResult.
func (f *Facade) run(ctx context.Context, tool, failure string, fn func(context.Context) (Result, error)) (res Result) {
	ctx, callID := ensureCallID(ctx)
	logger := f.logger.With(logging.FieldTool, tool, logging.FieldCallID, callID)

	defer func() {
		if p := recover(); p != nil {
			logger.ErrorContext(ctx, "tool panicked", "panic", p, "stack", string(debug.Stack()))
			res = &ErrorResult{
				Status:  StatusError,
				Kind:    KindInternal,
				Message: fmt.Sprintf("%s: %v", failure, p),
			}
		}
	}()

	out, err := fn(ctx)
	if err != nil {
		er := toErrorResult(failure, err)
		logger.WarnContext(ctx, "tool failed", logging.FieldKind, er.Kind, logging.FieldError, err)
		return er
	}
	logger.DebugContext(ctx, "tool succeeded")
	return out
}

func toErrorResult(failure string, err error) *ErrorResult {
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &ve):
		return &ErrorResult{
			Status:       StatusError,
			Kind:         KindValidation,
			Message:      ve.Error(),
			ValidOptions: ve.Valid,
		}
	case errors.Is(err, ledger.ErrStorage):
		return &ErrorResult{Status: StatusError, Kind: KindStorage, Message: failure + ": " + err.Error()}
	default:
		return &ErrorResult{Status: StatusError, Kind: KindInternal, Message: failure + ": " + err.Error()}
	}
}

func nonNegative(field string, v int64) error {
	if v < 0 {
		return &ledger.ValidationError{Field: field, Err: fmt.Errorf("%w, got %d", ledger.ErrNegativeValue, v)}
	}
	return nil
}

// multiply expects non-negative operands.
func multiply(a, b int64) (int64, error) {
	if b != 0 && a > math.MaxInt64/b {
		return 0, &ledger.ValidationError{
			Field: "amount",
			Err:   fmt.Errorf("%w: %d × %d", ledger.ErrAmountOverflow, a, b),
		}
	}
	return a * b, nil
}
