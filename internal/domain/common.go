package domain

// Direction represents the direction of a candle (bullish or bearish).
type Direction string

const (
	Bullish Direction = "BULL"
	Bearish Direction = "BEAR"
)
