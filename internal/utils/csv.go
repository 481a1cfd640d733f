package utils

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"candleChart/internal/domain"
)

// WriteCandlesToCSV exports a candle series to a CSV file. The moving-average
// column is left empty for candles whose trailing window is not full.
func WriteCandlesToCSV(candles domain.Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	writer.Write([]string{"open_time", "close_time", "symbol", "interval", "open", "high", "low", "close", "volume", "moving_average"})

	for _, c := range candles {
		ma := ""
		if c.MovingAverage != nil {
			ma = strconv.FormatFloat(*c.MovingAverage, 'f', -1, 64)
		}
		writer.Write([]string{
			c.OpenTime.Format(time.RFC3339),
			c.CloseTime.Format(time.RFC3339),
			c.Symbol,
			c.Interval,
			strconv.FormatFloat(c.Open, 'f', -1, 64),
			strconv.FormatFloat(c.High, 'f', -1, 64),
			strconv.FormatFloat(c.Low, 'f', -1, 64),
			strconv.FormatFloat(c.Close, 'f', -1, 64),
			strconv.FormatFloat(c.Volume, 'f', -1, 64),
			ma,
		})
	}
	return writer.Error()
}
