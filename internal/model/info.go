package model

// Direction is the day-over-day move shown on the watchlist.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
	DirectionFlat Direction = "FLAT"
)

// InfoLine is the quick dashboard view of a series.
type InfoLine struct {
	Symbol    string    `json:"symbol"`
	Date      string    `json:"date"`
	Price     float64   `json:"price"`
	HasChange bool      `json:"has_change"`
	Change    float64   `json:"change"`
	Direction Direction `json:"direction,omitempty"`
}
