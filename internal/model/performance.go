package model

// Outcome classifies a simulated trade.
type Outcome string

const (
	OutcomeProfit Outcome = "profit"
	OutcomeLoss   Outcome = "loss"
)

// Performance is the result of a buy/sell simulation between two dates.
type Performance struct {
	Symbol    string  `json:"symbol"`
	BuyDate   string  `json:"buy_date"`
	BuyPrice  float64 `json:"buy_price"`
	SellDate  string  `json:"sell_date"`
	SellPrice float64 `json:"sell_price"`
	Profit    float64 `json:"profit"`
	ROI       float64 `json:"roi"` // percent
	Outcome   Outcome `json:"outcome"`
	// ZeroBasis is set when the buy price was zero and ROI fell back to 0.
	ZeroBasis bool `json:"zero_basis"`
	// Reversed is set when the sell record is older than the buy record.
	Reversed bool `json:"reversed"`
}
