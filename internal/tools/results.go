package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/simonvc/tripbudget/internal/ledger"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind classifies a failed tool call.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindStorage    ErrorKind = "storage"
	KindInternal   ErrorKind = "internal"
	KindNotFound   ErrorKind = "not_found"
)

// Result is the outcome of one tool call. Every variant below implements it;
// a call returns exactly one of them.
type Result interface {
	fmt.Stringer
	ToolStatus() Status
	isResult()
}

// CostResult is returned by food_cost and hotel_cost.
type CostResult struct {
	Status   Status `json:"status"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Details  string `json:"details"`
}

type TransportResult struct {
	Status        Status  `json:"status"`
	Category      string  `json:"category"`
	Amount        int64   `json:"amount"`
	TransportType string  `json:"transport_type"`
	DistanceKM    int64   `json:"distance_km"`
	RatePerKM     float64 `json:"rate_per_km"`
	Currency      string  `json:"currency"`
	Details       string  `json:"details"`
}

// BudgetResult carries the formatted report of total_budget. When NoData is
// set, Report holds the "nothing recorded yet" line instead of a report.
type BudgetResult struct {
	Status Status `json:"status"`
	NoData bool   `json:"no_data"`
	Report string `json:"report"`
}

type ClearResult struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// SummaryResult is the structured form of the ledger. Categories keep
// first-seen order, which is why they are a list and not an object.
type SummaryResult struct {
	Status     Status                 `json:"status"`
	Total      int64                  `json:"total"`
	Categories []ledger.CategoryTotal `json:"categories"`
	Currency   string                 `json:"currency"`
	NoData     bool                   `json:"no_data"`
	Message    string                 `json:"message,omitempty"`
}

type ErrorResult struct {
	Status       Status    `json:"status"`
	Kind         ErrorKind `json:"kind"`
	Message      string    `json:"message"`
	ValidOptions []string  `json:"valid_options,omitempty"`
}

func (r *CostResult) ToolStatus() Status      { return r.Status }
func (r *TransportResult) ToolStatus() Status { return r.Status }
func (r *BudgetResult) ToolStatus() Status    { return r.Status }
func (r *ClearResult) ToolStatus() Status     { return r.Status }
func (r *SummaryResult) ToolStatus() Status   { return r.Status }
func (r *ErrorResult) ToolStatus() Status     { return r.Status }

func (*CostResult) isResult()      {}
func (*TransportResult) isResult() {}
func (*BudgetResult) isResult()    {}
func (*ClearResult) isResult()     {}
func (*SummaryResult) isResult()   {}
func (*ErrorResult) isResult()     {}

func (r *CostResult) String() string {
	return fmt.Sprintf("%s: %s (%s)", r.Category, ledger.FormatMoney(r.Amount), r.Details)
}

func (r *TransportResult) String() string {
	return fmt.Sprintf("%s: %s (%s)", r.Category, ledger.FormatMoney(r.Amount), r.Details)
}

func (r *BudgetResult) String() string { return r.Report }

func (r *ClearResult) String() string { return r.Message }

func (r *SummaryResult) String() string {
	if r.NoData {
		return r.Message
	}
	var b strings.Builder
	for _, ct := range r.Categories {
		fmt.Fprintf(&b, "%-12s %12s  (%d items)\n", ct.Category, ledger.FormatMoney(ct.Subtotal), len(ct.Items))
	}
	fmt.Fprintf(&b, "%-12s %12s %s", "Total", ledger.FormatMoney(r.Total), r.Currency)
	return b.String()
}

func (r *ErrorResult) String() string { return "error: " + r.Message }

// Error lets a failed result travel as an error.
func (r *ErrorResult) Error() string { return r.Message }

// DecodeResult turns the JSON form of a tool result back into its variant.
func DecodeResult(tool string, data []byte) (Result, error) {
	var head struct {
		Status Status `json:"status"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode result status: %w", err)
	}

	var r Result
	switch {
	case head.Status == StatusError:
		r = &ErrorResult{}
	case head.Status != StatusSuccess:
		return nil, fmt.Errorf("unknown result status %q", head.Status)
	case tool == ToolFoodCost, tool == ToolHotelCost:
		r = &CostResult{}
	case tool == ToolTransportCost:
		r = &TransportResult{}
	case tool == ToolTotalBudget:
		r = &BudgetResult{}
	case tool == ToolClearAllExpenses:
		r = &ClearResult{}
	case tool == ToolGetExpenseSummary:
		r = &SummaryResult{}
	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}

	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", tool, err)
	}
	return r, nil
}
