package backend

import (
	"fmt"
	"math"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
)

// TechanAdapter computes indicator columns with the sdcoffey/techan library.
// It covers the common single- and multi-output functions; functions outside
// techan's coverage return an error.
//
// Output column names follow the pandas_ta convention (RSI_14, MACD_12_26_9,
// BBU_20_2, ...) but nothing depends on them: the registry attributes output
// columns by diffing the table, not by name.
type TechanAdapter struct{}

// NewTechanAdapter creates the techan backend adapter.
func NewTechanAdapter() *TechanAdapter {
	return &TechanAdapter{}
}

// ID returns the backend identifier used in bindings.
func (a *TechanAdapter) ID() string {
	return "techan"
}

// Call dispatches to the named techan-backed function.
func (a *TechanAdapter) Call(tbl *table.Table, function string, args map[string]any) error {
	switch function {
	case "sma":
		return a.movingAverage(tbl, args, "SMA", techan.NewSimpleMovingAverage)
	case "ema":
		return a.movingAverage(tbl, args, "EMA", techan.NewEMAIndicator)
	case "rma":
		return a.movingAverage(tbl, args, "RMA", techan.NewMMAIndicator)
	case "rsi":
		return a.movingAverage(tbl, args, "RSI", techan.NewRelativeStrengthIndexIndicator)
	case "macd":
		return a.macd(tbl, args)
	case "bbands":
		return a.bbands(tbl, args)
	case "atr":
		return a.atr(tbl, args)
	case "cci":
		return a.cci(tbl, args)
	case "stoch":
		return a.stoch(tbl, args)
	default:
		return fmt.Errorf("techan backend: function %q not implemented", function)
	}
}

func (a *TechanAdapter) movingAverage(tbl *table.Table, args map[string]any, prefix string, ctor func(techan.Indicator, int) techan.Indicator) error {
	series, err := a.series(tbl, args)
	if err != nil {
		return err
	}

	length, err := intArg(args, "length")
	if err != nil {
		return err
	}

	ind := ctor(techan.NewClosePriceIndicator(series), length)

	return tbl.AddColumn(fmt.Sprintf("%s_%d", prefix, length), evaluate(ind, tbl.Len()))
}

func (a *TechanAdapter) macd(tbl *table.Table, args map[string]any) error {
	series, err := a.series(tbl, args)
	if err != nil {
		return err
	}

	fast, err := intArg(args, "fast")
	if err != nil {
		return err
	}
	slow, err := intArg(args, "slow")
	if err != nil {
		return err
	}
	signal, err := intArg(args, "signal")
	if err != nil {
		return err
	}

	macdInd := techan.NewMACDIndicator(techan.NewClosePriceIndicator(series), fast, slow)
	histInd := techan.NewMACDHistogramIndicator(macdInd, signal)

	macdCol := evaluate(macdInd, tbl.Len())
	histCol := evaluate(histInd, tbl.Len())
	signalCol := make([]float64, tbl.Len())
	for i := range signalCol {
		signalCol[i] = macdCol[i] - histCol[i]
	}

	suffix := fmt.Sprintf("%d_%d_%d", fast, slow, signal)
	if err := tbl.AddColumn("MACD_"+suffix, macdCol); err != nil {
		return err
	}
	if err := tbl.AddColumn("MACDs_"+suffix, signalCol); err != nil {
		return err
	}

	return tbl.AddColumn("MACDh_"+suffix, histCol)
}

func (a *TechanAdapter) bbands(tbl *table.Table, args map[string]any) error {
	series, err := a.series(tbl, args)
	if err != nil {
		return err
	}

	length, err := intArg(args, "length")
	if err != nil {
		return err
	}
	std, err := floatArg(args, "std")
	if err != nil {
		return err
	}

	closeInd := techan.NewClosePriceIndicator(series)
	middle := techan.NewSimpleMovingAverage(closeInd, length)
	upper := techan.NewBollingerUpperBandIndicator(closeInd, length, std)
	lower := techan.NewBollingerLowerBandIndicator(closeInd, length, std)

	suffix := fmt.Sprintf("%d_%g", length, std)
	if err := tbl.AddColumn("BBL_"+suffix, evaluate(lower, tbl.Len())); err != nil {
		return err
	}
	if err := tbl.AddColumn("BBM_"+suffix, evaluate(middle, tbl.Len())); err != nil {
		return err
	}

	return tbl.AddColumn("BBU_"+suffix, evaluate(upper, tbl.Len()))
}

func (a *TechanAdapter) atr(tbl *table.Table, args map[string]any) error {
	series, err := a.series(tbl, args)
	if err != nil {
		return err
	}

	length, err := intArg(args, "length")
	if err != nil {
		return err
	}

	ind := techan.NewAverageTrueRangeIndicator(series, length)

	return tbl.AddColumn(fmt.Sprintf("ATR_%d", length), evaluate(ind, tbl.Len()))
}

func (a *TechanAdapter) cci(tbl *table.Table, args map[string]any) error {
	series, err := a.series(tbl, args)
	if err != nil {
		return err
	}

	length, err := intArg(args, "length")
	if err != nil {
		return err
	}

	ind := techan.NewCCIIndicator(series, length)

	return tbl.AddColumn(fmt.Sprintf("CCI_%d", length), evaluate(ind, tbl.Len()))
}

func (a *TechanAdapter) stoch(tbl *table.Table, args map[string]any) error {
	series, err := a.series(tbl, args)
	if err != nil {
		return err
	}

	k, err := intArg(args, "k")
	if err != nil {
		return err
	}
	d, err := intArg(args, "d")
	if err != nil {
		return err
	}
	smoothK, err := intArg(args, "smooth_k")
	if err != nil {
		return err
	}

	fastK := techan.NewFastStochasticIndicator(series, k)
	var kInd techan.Indicator = fastK
	if smoothK > 1 {
		kInd = techan.NewSimpleMovingAverage(fastK, smoothK)
	}
	dInd := techan.NewSimpleMovingAverage(kInd, d)

	suffix := fmt.Sprintf("%d_%d_%d", k, d, smoothK)
	if err := tbl.AddColumn("STOCHk_"+suffix, evaluate(kInd, tbl.Len())); err != nil {
		return err
	}

	return tbl.AddColumn("STOCHd_"+suffix, evaluate(dInd, tbl.Len()))
}

// series builds a techan time series from the table columns named by the
// input arguments. Functions that only take close fall back to close for
// the other candle prices so that candle construction stays well-formed.
func (a *TechanAdapter) series(tbl *table.Table, args map[string]any) (*techan.TimeSeries, error) {
	closeCol, err := inputColumn(tbl, args, "close", nil)
	if err != nil {
		return nil, err
	}
	openCol, err := inputColumn(tbl, args, "open", closeCol)
	if err != nil {
		return nil, err
	}
	highCol, err := inputColumn(tbl, args, "high", closeCol)
	if err != nil {
		return nil, err
	}
	lowCol, err := inputColumn(tbl, args, "low", closeCol)
	if err != nil {
		return nil, err
	}
	volumeCol, err := inputColumn(tbl, args, "volume", make([]float64, tbl.Len()))
	if err != nil {
		return nil, err
	}

	times := tbl.Times()
	start := time.Unix(0, 0).UTC()

	series := techan.NewTimeSeries()
	for i := 0; i < tbl.Len(); i++ {
		var period techan.TimePeriod
		if times != nil {
			period = techan.NewTimePeriod(times[i], time.Minute)
		} else {
			period = techan.NewTimePeriod(start.Add(time.Duration(i)*time.Minute), time.Minute)
		}

		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewDecimal(openCol[i])
		candle.MaxPrice = big.NewDecimal(highCol[i])
		candle.MinPrice = big.NewDecimal(lowCol[i])
		candle.ClosePrice = big.NewDecimal(closeCol[i])
		candle.Volume = big.NewDecimal(volumeCol[i])
		series.AddCandle(candle)
	}

	return series, nil
}

// inputColumn resolves the table column named by args[logical]. When the
// argument is absent the fallback is used; a nil fallback makes the input
// mandatory.
func inputColumn(tbl *table.Table, args map[string]any, logical string, fallback []float64) ([]float64, error) {
	raw, ok := args[logical]
	if !ok {
		if fallback == nil {
			return nil, fmt.Errorf("techan backend: missing input argument %q", logical)
		}

		return fallback, nil
	}

	name, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("techan backend: input argument %q must be a column name, got %T", logical, raw)
	}

	col, ok := tbl.Column(name)
	if !ok {
		return nil, fmt.Errorf("techan backend: column %q not found", name)
	}

	return col, nil
}

func evaluate(ind techan.Indicator, n int) []float64 {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v := ind.Calculate(i).Float()
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		values[i] = v
	}

	return values
}

func intArg(args map[string]any, name string) (int, error) {
	raw, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("techan backend: missing argument %q", name)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("techan backend: argument %q must be an int, got %T", name, raw)
	}
}

func floatArg(args map[string]any, name string) (float64, error) {
	raw, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("techan backend: missing argument %q", name)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("techan backend: argument %q must be a float, got %T", name, raw)
	}
}
