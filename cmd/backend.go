package cmd

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai"

	"github.com/simonvc/tripbudget/internal/client"
	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/store"
	"github.com/simonvc/tripbudget/internal/tools"
)

// backend runs the tools either in-process or through a server.
type backend interface {
	tools.Invoker
	Call(ctx context.Context, name string, args json.RawMessage) (tools.Invocation, error)
	ListExpenses(ctx context.Context) ([]ledger.Expense, error)
	Definitions(ctx context.Context) ([]openai.Tool, error)
	TransportTypes() []string
	Close() error
}

func openBackend() (backend, error) {
	if cfg.ServerURL != "" {
		return remoteBackend{client.New(cfg.ServerURL, cfg.ClientTimeout)}, nil
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return localBackend{Facade: tools.New(st, ledger.DefaultRates(), logger), store: st}, nil
}

type localBackend struct {
	*tools.Facade
	store *store.Store
}

func (b localBackend) Call(ctx context.Context, name string, args json.RawMessage) (tools.Invocation, error) {
	return tools.Call(ctx, b.Facade, name, args), nil
}

func (b localBackend) ListExpenses(ctx context.Context) ([]ledger.Expense, error) {
	return b.store.ListAll(ctx)
}

func (b localBackend) Definitions(context.Context) ([]openai.Tool, error) {
	return b.Facade.Definitions(), nil
}

func (b localBackend) TransportTypes() []string { return b.Rates().Names() }

func (b localBackend) Close() error { return b.store.Close() }

type remoteBackend struct {
	*client.Client
}

// Rates are fixed, so the local table names the same transport types.
func (remoteBackend) TransportTypes() []string { return ledger.DefaultRates().Names() }

func (remoteBackend) Close() error { return nil }
