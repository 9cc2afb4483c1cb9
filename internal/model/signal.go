package model

// SignalKind is the direction of a crossover event.
type SignalKind int

const (
	SignalBuy SignalKind = iota
	SignalSell
)

func (k SignalKind) String() string {
	switch k {
	case SignalBuy:
		return "BUY"
	case SignalSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText lets signals serialize as "BUY"/"SELL".
func (k SignalKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Signal is a single crossover event in chronological order.
type Signal struct {
	Kind     SignalKind `json:"kind"`
	Date     string     `json:"date"`
	Price    float64    `json:"price"`
	Short    float64    `json:"short_ma"`
	Long     float64    `json:"long_ma"`
	Position int        `json:"position"`
}

// TrendKind classifies the most recent relation between the averages.
type TrendKind int

const (
	Bearish TrendKind = iota
	Bullish
)

func (k TrendKind) String() string {
	if k == Bullish {
		return "BULLISH"
	}
	return "BEARISH"
}

func (k TrendKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Trend is computed from the final chronological point only.
type Trend struct {
	Kind  TrendKind `json:"kind"`
	Short float64   `json:"short_ma"`
	Long  float64   `json:"long_ma"`
	Gap   float64   `json:"gap"` // short - long
}

// SignalReport is the output of the signal engine.
type SignalReport struct {
	Symbol      string   `json:"symbol"`
	ShortPeriod int      `json:"short_period"`
	LongPeriod  int      `json:"long_period"`
	Points      int      `json:"points"`
	Signals     []Signal `json:"signals"`
	Trend       Trend    `json:"trend"`
}

// Latest returns the most recent signal, or nil when none fired.
func (r *SignalReport) Latest() *Signal {
	if len(r.Signals) == 0 {
		return nil
	}
	return &r.Signals[len(r.Signals)-1]
}

// Fresh reports whether the latest signal fired on the final data point.
func (r *SignalReport) Fresh() bool {
	s := r.Latest()
	return s != nil && s.Position == r.Points-1
}
