package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/server"
	"github.com/simonvc/tripbudget/internal/store"
	"github.com/simonvc/tripbudget/internal/tools"
)

// resetFlags puts every flag back to its default; the command tree is
// package state and outlives a single Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip_budget.db")
	t.Setenv("TRIPBUDGET_DB_PATH", path)
	t.Setenv("TRIPBUDGET_SERVER", "")
	t.Setenv("TRIPBUDGET_LOG_LEVEL", "error")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_TripScenario(t *testing.T) {
	useTempDB(t)

	out, err := execute(t, "food", "--days", "5", "--per-day", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Food: ₹2,500")

	out, err = execute(t, "hotel", "--nights", "4", "--per-night", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "Hotel: ₹8,000")

	out, err = execute(t, "transport", "--km", "300", "--type", "train")
	require.NoError(t, err)
	assert.Contains(t, out, "Transport: ₹450")

	out, err = execute(t, "summary", "--json")
	require.NoError(t, err)
	var sum tools.SummaryResult
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, int64(10950), sum.Total)
	require.Len(t, sum.Categories, 3)
	assert.Equal(t, ledger.CategoryFood, sum.Categories[0].Category)

	out, err = execute(t, "budget")
	require.NoError(t, err)
	assert.Contains(t, out, "₹10,950")

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "300 km via train")

	out, err = execute(t, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, tools.ClearedMessage)

	out, err = execute(t, "budget")
	require.NoError(t, err)
	assert.Contains(t, out, ledger.NoDataMessage)
}

func TestCLI_UnknownTransportType(t *testing.T) {
	useTempDB(t)

	_, err := execute(t, "transport", "--km", "100", "--type", "rocket")

	var er *tools.ErrorResult
	require.ErrorAs(t, err, &er)
	assert.Equal(t, tools.KindValidation, er.Kind)
	assert.Equal(t, []string{"bus", "train", "cab", "flight"}, er.ValidOptions)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses found.")
}

func TestCLI_RequiredFlags(t *testing.T) {
	useTempDB(t)

	_, err := execute(t, "food", "--days", "5")

	assert.ErrorContains(t, err, `required flag(s) "per-day" not set`)
}

func TestCLI_InvalidConfig(t *testing.T) {
	useTempDB(t)

	_, err := execute(t, "budget", "--log-format", "xml", "--server", "ftp://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
	assert.Contains(t, err.Error(), "scheme must be http or https")
}

func TestCLI_Tools(t *testing.T) {
	useTempDB(t)

	out, err := execute(t, "tools")
	require.NoError(t, err)
	for _, name := range tools.Names {
		assert.Contains(t, out, name)
	}

	out, err = execute(t, "tools", "--call", tools.ToolTransportCost, "--args", `{"distance_km": 7, "transport_type": "train"}`)
	require.NoError(t, err)

	var inv struct {
		CallID string `json:"call_id"`
		Tool   string `json:"tool"`
		Result struct {
			Status string `json:"status"`
			Amount int64  `json:"amount"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &inv))
	assert.NotEmpty(t, inv.CallID)
	assert.Equal(t, tools.ToolTransportCost, inv.Tool)
	assert.Equal(t, "success", inv.Result.Status)
	assert.Equal(t, int64(10), inv.Result.Amount)

	_, err = execute(t, "tools", "--call", "book_flight")
	var er *tools.ErrorResult
	require.ErrorAs(t, err, &er)
	assert.Equal(t, tools.KindNotFound, er.Kind)

	_, err = execute(t, "tools", "--call", tools.ToolFoodCost, "--args", "{days: 1")
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestCLI_RemoteServer(t *testing.T) {
	useTempDB(t)

	st, err := store.Open(filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := server.New(tools.New(st, ledger.DefaultRates(), nil), st, ":0", nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	out, err := execute(t, "--server", ts.URL, "hotel", "--nights", "2", "--per-night", "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "Hotel: ₹3,000")

	// The expense landed in the server's database, not the local one.
	n, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses found.")
}
