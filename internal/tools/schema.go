package tools

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Definitions describes the tools as function definitions an agent can
// register as-is. The transport enum comes from rates so the two never drift.
func Definitions(transportTypes []string) []openai.Tool {
	noParams := jsonschema.Definition{
		Type:       jsonschema.Object,
		Properties: map[string]jsonschema.Definition{},
	}

	return []openai.Tool{
		function(ToolFoodCost,
			"Calculate the food cost for a trip as days multiplied by the daily food budget, and record it as a Food expense.",
			jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"days": {
						Type:        jsonschema.Integer,
						Description: "Number of days of the trip.",
					},
					"cost_per_day": {
						Type:        jsonschema.Integer,
						Description: "Food budget per day in rupees.",
					},
				},
				Required: []string{"days", "cost_per_day"},
			}),
		function(ToolHotelCost,
			"Calculate the hotel cost as nights multiplied by the nightly rate, and record it as a Hotel expense.",
			jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"nights": {
						Type:        jsonschema.Integer,
						Description: "Number of nights to stay.",
					},
					"price_per_night": {
						Type:        jsonschema.Integer,
						Description: "Room price per night in rupees.",
					},
				},
				Required: []string{"nights", "price_per_night"},
			}),
		function(ToolTransportCost,
			"Calculate the transport cost from the distance and the per-km rate of the transport type, and record it as a Transport expense.",
			jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"distance_km": {
						Type:        jsonschema.Integer,
						Description: "Distance to travel in kilometres.",
					},
					"transport_type": {
						Type:        jsonschema.String,
						Enum:        transportTypes,
						Description: "Type of transport, case-insensitive.",
					},
				},
				Required: []string{"distance_km", "transport_type"},
			}),
		function(ToolTotalBudget,
			"Show the full trip budget report grouped by category with subtotals and the grand total.",
			noParams),
		function(ToolClearAllExpenses,
			"Delete every recorded expense to start planning a new trip.",
			noParams),
		function(ToolGetExpenseSummary,
			"Return the recorded expenses as structured data: total, per-category subtotals and items.",
			noParams),
	}
}

// Definitions describes the tools this facade serves.
func (f *Facade) Definitions() []openai.Tool {
	return Definitions(f.rates.Names())
}

func function(name, description string, params jsonschema.Definition) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
	}
}
