package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/simonvc/tripbudget/internal/ledger"
)

type callIDKey struct{}

// WithCallID attaches a call id to ctx. Tools invoked with that ctx log and
// report under it instead of minting their own.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// CallIDFrom returns the call id carried by ctx, or "".
func CallIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey{}).(string)
	return id
}

// NewCallID returns a time-ordered id.
func NewCallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func ensureCallID(ctx context.Context) (context.Context, string) {
	if id := CallIDFrom(ctx); id != "" {
		return ctx, id
	}
	id := NewCallID()
	return WithCallID(ctx, id), id
}

// Invocation records one call made by name.
type Invocation struct {
	CallID string `json:"call_id"`
	Tool   string `json:"tool"`
	Result Result `json:"result"`
}

type foodArgs struct {
	Days       *int64 `json:"days"`
	CostPerDay *int64 `json:"cost_per_day"`
}

type hotelArgs struct {
	Nights        *int64 `json:"nights"`
	PricePerNight *int64 `json:"price_per_night"`
}

type transportArgs struct {
	DistanceKM    *int64  `json:"distance_km"`
	TransportType *string `json:"transport_type"`
}

type noArgs struct{}

// Call runs the tool called name with keyword arguments encoded as a JSON
// object. An empty args is treated as {}.
func Call(ctx context.Context, inv Invoker, name string, args json.RawMessage) Invocation {
	ctx, callID := ensureCallID(ctx)
	return Invocation{CallID: callID, Tool: name, Result: call(ctx, inv, name, args)}
}

func call(ctx context.Context, inv Invoker, name string, args json.RawMessage) Result {
	switch name {
	case ToolFoodCost:
		var a foodArgs
		if err := decodeArgs(args, &a); err != nil {
			return argsError(err)
		}
		if err := required("days", a.Days, "cost_per_day", a.CostPerDay); err != nil {
			return argsError(err)
		}
		return inv.FoodCost(ctx, *a.Days, *a.CostPerDay)

	case ToolHotelCost:
		var a hotelArgs
		if err := decodeArgs(args, &a); err != nil {
			return argsError(err)
		}
		if err := required("nights", a.Nights, "price_per_night", a.PricePerNight); err != nil {
			return argsError(err)
		}
		return inv.HotelCost(ctx, *a.Nights, *a.PricePerNight)

	case ToolTransportCost:
		var a transportArgs
		if err := decodeArgs(args, &a); err != nil {
			return argsError(err)
		}
		if a.DistanceKM == nil {
			return argsError(missing("distance_km"))
		}
		if a.TransportType == nil {
			return argsError(missing("transport_type"))
		}
		return inv.TransportCost(ctx, *a.DistanceKM, *a.TransportType)

	case ToolTotalBudget, ToolClearAllExpenses, ToolGetExpenseSummary:
		if err := decodeArgs(args, &noArgs{}); err != nil {
			return argsError(err)
		}
		switch name {
		case ToolTotalBudget:
			return inv.TotalBudget(ctx)
		case ToolClearAllExpenses:
			return inv.ClearAllExpenses(ctx)
		default:
			return inv.GetExpenseSummary(ctx)
		}
	}

	return &ErrorResult{
		Status:       StatusError,
		Kind:         KindNotFound,
		Message:      fmt.Sprintf("unknown tool %q", name),
		ValidOptions: append([]string(nil), Names...),
	}
}

func decodeArgs(args json.RawMessage, v any) error {
	if len(bytes.TrimSpace(args)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ledger.ValidationError{Field: "arguments", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &ledger.ValidationError{Field: "arguments", Err: errors.New("trailing data after arguments object")}
	}
	return nil
}

func required(aName string, a *int64, bName string, b *int64) error {
	if a == nil {
		return missing(aName)
	}
	if b == nil {
		return missing(bName)
	}
	return nil
}

func missing(field string) error {
	return &ledger.ValidationError{Field: field, Err: fmt.Errorf("%w: required argument missing", ledger.ErrValidation)}
}

func argsError(err error) *ErrorResult {
	return toErrorResult("Invalid arguments", err)
}
