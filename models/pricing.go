package models

import "github.com/shopspring/decimal"

// ModelPricing holds per-model token prices in USD per million tokens.
type ModelPricing struct {
	InputPerMTok  decimal.Decimal
	OutputPerMTok decimal.Decimal
}

// Pricing returns the known price entry for a provider/model pair.
func Pricing(provider, model string) (ModelPricing, bool) {
	byModel, ok := priceTable[provider]
	if !ok {
		return ModelPricing{}, false
	}
	p, ok := byModel[model]
	return p, ok
}

// priceTable contains published list prices (USD per million tokens).
// Local runtimes have no entries.
var priceTable = map[string]map[string]ModelPricing{
	"openai": {
		"gpt-4o":      {InputPerMTok: decimal.NewFromFloat(2.5), OutputPerMTok: decimal.NewFromFloat(10)},
		"gpt-4o-mini": {InputPerMTok: decimal.NewFromFloat(0.15), OutputPerMTok: decimal.NewFromFloat(0.6)},
		"gpt-4.1":     {InputPerMTok: decimal.NewFromFloat(2), OutputPerMTok: decimal.NewFromFloat(8)},
		"o3-mini":     {InputPerMTok: decimal.NewFromFloat(1.1), OutputPerMTok: decimal.NewFromFloat(4.4)},
	},
	"anthropic": {
		"claude-sonnet-4-5": {InputPerMTok: decimal.NewFromFloat(3), OutputPerMTok: decimal.NewFromFloat(15)},
		"claude-haiku-4-5":  {InputPerMTok: decimal.NewFromFloat(1), OutputPerMTok: decimal.NewFromFloat(5)},
		"claude-opus-4-1":   {InputPerMTok: decimal.NewFromFloat(15), OutputPerMTok: decimal.NewFromFloat(75)},
	},
	"gemini": {
		"gemini-2.0-flash": {InputPerMTok: decimal.NewFromFloat(0.1), OutputPerMTok: decimal.NewFromFloat(0.4)},
		"gemini-1.5-pro":   {InputPerMTok: decimal.NewFromFloat(1.25), OutputPerMTok: decimal.NewFromFloat(5)},
	},
}
