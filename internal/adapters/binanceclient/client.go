package binanceclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"candleChart/internal/domain"
	"candleChart/internal/ports"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
)

const (
	// Base URLs
	baseURLProduction = "https://fapi.binance.com"
	baseURLTestnet    = "https://testnet.binancefuture.com"
)

// Client implements the ports.MarketDataClient interface using the go-binance
// library. Only public market-data endpoints are used, so no API keys are
// required.
type Client struct {
	futuresClient        *futures.Client
	logger               ports.Logger
	reconnectDelay       time.Duration
	maxReconnectAttempts int
}

// Config holds configuration specific to the Binance client adapter.
type Config struct {
	UseTestnet           bool
	Logger               ports.Logger
	ReconnectDelay       time.Duration // Reconnect delay (e.g., 1 * time.Second)
	MaxReconnectAttempts int           // Max attempts before giving up
}

// New creates a new Binance market-data adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Binance client")
	}

	client := futures.NewClient("", "")
	if cfg.UseTestnet {
		client.BaseURL = baseURLTestnet
		cfg.Logger.Info(context.Background(), "Binance client configured for Testnet", map[string]interface{}{"baseURL": client.BaseURL})
	} else {
		client.BaseURL = baseURLProduction
		cfg.Logger.Info(context.Background(), "Binance client configured for Production", map[string]interface{}{"baseURL": client.BaseURL})
	}

	reconnectDelay := cfg.ReconnectDelay
	if reconnectDelay <= 0 {
		reconnectDelay = 1 * time.Second
	}
	maxAttempts := cfg.MaxReconnectAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10
	}

	return &Client{
		futuresClient:        client,
		logger:               cfg.Logger,
		reconnectDelay:       reconnectDelay,
		maxReconnectAttempts: maxAttempts,
	}, nil
}

// handleError translates common Binance API errors into standardized ports errors.
func (c *Client) handleError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	fields := map[string]interface{}{"operation": operation, "originalError": err.Error()}

	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		fields["apiErrorCode"] = apiErr.Code
		fields["apiErrorMessage"] = apiErr.Message

		var mappedErr error
		switch apiErr.Code {
		case -1003: // Too many requests
			mappedErr = ports.ErrRateLimited
		case -1021: // Timestamp outside of the recvWindow
			mappedErr = ports.ErrTimeout
		case -1100, -1101, -1102, -1103, -1104, -1105, -1106, -1120, -1121: // Parameter/Request format errors
			mappedErr = ports.ErrInvalidRequest
		default:
			mappedErr = ports.ErrExchangeUnavailable
		}
		c.logger.Error(ctx, mappedErr, "Binance API error", fields)
		return fmt.Errorf("%s: %w (binance code %d: %s)", operation, mappedErr, apiErr.Code, apiErr.Message)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", operation, ports.ErrContextCanceled)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", operation, ports.ErrTimeout)
	}

	c.logger.Error(ctx, err, "Binance request failed", fields)
	return fmt.Errorf("%s: %w: %v", operation, ports.ErrConnectionFailed, err)
}

// Ping checks connectivity to the Binance API.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.futuresClient.NewPingService().Do(ctx); err != nil {
		return c.handleError(ctx, err, "Ping")
	}
	return nil
}

// GetServerTime retrieves the current server time from Binance.
func (c *Client) GetServerTime(ctx context.Context) (time.Time, error) {
	ms, err := c.futuresClient.NewServerTimeService().Do(ctx)
	if err != nil {
		return time.Time{}, c.handleError(ctx, err, "GetServerTime")
	}
	return time.UnixMilli(ms), nil
}

// GetCandles retrieves the most recent historical candles for a symbol.
func (c *Client) GetCandles(ctx context.Context, symbol string, interval string, limit int) (domain.Series, error) {
	op := "GetCandles"
	klines, err := c.futuresClient.NewKlinesService().Symbol(symbol).Interval(interval).Limit(limit).Do(ctx)
	if err != nil {
		return nil, c.handleError(ctx, err, op)
	}

	series := make(domain.Series, 0, len(klines))
	for _, k := range klines {
		candle, err := translateKline(k, symbol, interval)
		if err != nil {
			return nil, c.handleError(ctx, fmt.Errorf("failed to translate historical kline: %w", err), op)
		}
		series = append(series, candle)
	}
	return series, nil
}

// GetCandlesRange fetches all candles for a symbol/interval between start and
// end time, paginating through the API limit.
func (c *Client) GetCandlesRange(ctx context.Context, symbol, interval string, start, end time.Time) (domain.Series, error) {
	op := "GetCandlesRange"
	var series domain.Series
	const maxLimit = 1500
	from := start

	for {
		klines, err := c.futuresClient.NewKlinesService().
			Symbol(symbol).
			Interval(interval).
			StartTime(from.UnixMilli()).
			EndTime(end.UnixMilli()).
			Limit(maxLimit).
			Do(ctx)
		if err != nil {
			return nil, c.handleError(ctx, err, op)
		}
		if len(klines) == 0 {
			break
		}
		for _, k := range klines {
			candle, err := translateKline(k, symbol, interval)
			if err != nil {
				return nil, c.handleError(ctx, fmt.Errorf("failed to translate historical kline range: %w", err), op)
			}
			series = append(series, candle)
		}
		last := klines[len(klines)-1]
		from = time.UnixMilli(last.CloseTime)
		if from.After(end) || len(klines) < maxLimit {
			break
		}
	}

	return series, nil
}

// StreamCandles starts a WebSocket stream for candle data, reconnecting with
// exponential backoff when the connection drops. The returned stopCh cancels
// the stream; doneCh closes when the stream has fully shut down.
func (c *Client) StreamCandles(ctx context.Context, symbol, interval string, handler func(candle *domain.Candle), errHandler func(err error)) (doneCh chan struct{}, stopCh chan struct{}, err error) {
	op := "StreamCandles"
	wsCtx, cancelWs := context.WithCancel(ctx)

	binanceHandler := func(event *futures.WsKlineEvent) {
		candle, err := translateWsKline(event)
		if err != nil {
			// Translation failures are logged but do not trigger the caller's
			// error handler; they would only cause a needless reconnect.
			c.logger.Error(wsCtx, err, op+": Failed to translate WebSocket kline event")
			return
		}
		handler(candle)
	}
	binanceErrHandler := func(err error) {
		translatedErr := c.handleError(wsCtx, err, op+" WebSocket")
		c.logger.Warn(wsCtx, op+": WebSocket error reported", map[string]interface{}{"error": translatedErr})
		errHandler(translatedErr)
	}

	// Reconnection loop.
	go func() {
		defer cancelWs()

		attempt := 0
		for {
			select {
			case <-wsCtx.Done():
				c.logger.Info(wsCtx, op+": Context cancelled, stopping connection attempts.", map[string]interface{}{"symbol": symbol, "interval": interval})
				return
			default:
				c.logger.Info(wsCtx, op+": Attempting WebSocket connection...", map[string]interface{}{"symbol": symbol, "interval": interval, "attempt": attempt + 1})
				innerDoneCh, innerStopCh, connectErr := futures.WsKlineServe(symbol, interval, binanceHandler, binanceErrHandler)

				if connectErr != nil {
					c.handleError(wsCtx, connectErr, op+" connection attempt")
					attempt++
					if attempt >= c.maxReconnectAttempts {
						c.logger.Error(wsCtx, connectErr, op+": Max reconnection attempts exceeded, giving up.", map[string]interface{}{"symbol": symbol, "interval": interval, "maxAttempts": c.maxReconnectAttempts})
						return
					}
					delay := c.reconnectDelay * time.Duration(1<<uint(attempt-1))
					c.logger.Info(wsCtx, op+": Connection failed, retrying...", map[string]interface{}{"symbol": symbol, "interval": interval, "attempt": attempt + 1, "delay": delay.String()})
					select {
					case <-time.After(delay):
						continue
					case <-wsCtx.Done():
						return
					}
				}

				c.logger.Info(wsCtx, op+": WebSocket connection established.", map[string]interface{}{"symbol": symbol, "interval": interval})
				attempt = 0

				select {
				case <-innerDoneCh:
					c.logger.Warn(wsCtx, op+": WebSocket connection closed unexpectedly. Reconnecting...", map[string]interface{}{"symbol": symbol, "interval": interval})
				case <-wsCtx.Done():
					select {
					case innerStopCh <- struct{}{}:
					default:
					}
					return
				}
			}
		}
	}()

	doneCh = make(chan struct{})
	stopCh = make(chan struct{})

	// Link the external stopCh to the internal context cancellation.
	go func() {
		select {
		case <-stopCh:
			cancelWs()
		case <-wsCtx.Done():
		}
	}()
	go func() {
		<-wsCtx.Done()
		close(doneCh)
	}()

	return doneCh, stopCh, nil
}

func translateWsKline(event *futures.WsKlineEvent) (*domain.Candle, error) {
	if event == nil {
		return nil, errors.New("received nil kline event")
	}
	k := event.Kline
	open, high, low, cls, vol, err := parsePrices(k.Open, k.High, k.Low, k.Close, k.Volume)
	if err != nil {
		return nil, err
	}
	return &domain.Candle{
		OpenTime:  time.UnixMilli(k.StartTime),
		CloseTime: time.UnixMilli(k.EndTime),
		Symbol:    k.Symbol,
		Interval:  k.Interval,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     cls,
		Volume:    vol,
		IsFinal:   k.IsFinal,
	}, nil
}

func translateKline(k *futures.Kline, symbol, interval string) (*domain.Candle, error) {
	if k == nil {
		return nil, errors.New("received nil historical kline")
	}
	open, high, low, cls, vol, err := parsePrices(k.Open, k.High, k.Low, k.Close, k.Volume)
	if err != nil {
		return nil, err
	}
	return &domain.Candle{
		OpenTime:  time.UnixMilli(k.OpenTime),
		CloseTime: time.UnixMilli(k.CloseTime),
		Symbol:    symbol,
		Interval:  interval,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     cls,
		Volume:    vol,
		IsFinal:   true,
	}, nil
}

func parsePrices(open, high, low, cls, vol string) (o, h, l, c, v float64, err error) {
	if o, err = strconv.ParseFloat(open, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("parsing open price '%s': %w", open, err)
	}
	if h, err = strconv.ParseFloat(high, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("parsing high price '%s': %w", high, err)
	}
	if l, err = strconv.ParseFloat(low, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("parsing low price '%s': %w", low, err)
	}
	if c, err = strconv.ParseFloat(cls, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("parsing close price '%s': %w", cls, err)
	}
	if v, err = strconv.ParseFloat(vol, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("parsing volume '%s': %w", vol, err)
	}
	return o, h, l, c, v, nil
}
