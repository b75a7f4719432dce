package backend

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
)

type TechanAdapterTestSuite struct {
	suite.Suite
	adapter *TechanAdapter
}

func TestTechanAdapterSuite(t *testing.T) {
	suite.Run(t, new(TechanAdapterTestSuite))
}

func (suite *TechanAdapterTestSuite) SetupTest() {
	suite.adapter = NewTechanAdapter()
}

// oscillating upward so gain and loss windows both stay non-empty
func (suite *TechanAdapterTestSuite) sampleTable() *table.Table {
	tbl := table.New()
	closeCol := []float64{10, 11, 10.5, 11.5, 11, 12, 11.5, 12.5, 12, 13, 12.5, 13.5, 13, 14, 13.5, 14.5}
	n := len(closeCol)

	openCol := make([]float64, n)
	highCol := make([]float64, n)
	lowCol := make([]float64, n)
	volumeCol := make([]float64, n)
	for i, c := range closeCol {
		openCol[i] = c - 0.2
		highCol[i] = c + 0.5
		lowCol[i] = c - 0.5
		volumeCol[i] = 1000 + float64(i)
	}

	suite.NoError(tbl.AddColumn("open", openCol))
	suite.NoError(tbl.AddColumn("high", highCol))
	suite.NoError(tbl.AddColumn("low", lowCol))
	suite.NoError(tbl.AddColumn("close", closeCol))
	suite.NoError(tbl.AddColumn("volume", volumeCol))

	return tbl
}

func (suite *TechanAdapterTestSuite) TestID() {
	suite.Equal("techan", suite.adapter.ID())
}

func (suite *TechanAdapterTestSuite) TestSMAConstantSeries() {
	tbl := table.New()
	suite.NoError(tbl.AddColumn("close", []float64{5, 5, 5, 5, 5, 5}))

	err := suite.adapter.Call(tbl, "sma", map[string]any{"close": "close", "length": 3})
	suite.NoError(err)
	suite.Equal([]string{"close", "SMA_3"}, tbl.Columns())

	col, ok := tbl.Column("SMA_3")
	suite.True(ok)
	suite.InDelta(5.0, col[len(col)-1], 1e-9)
}

func (suite *TechanAdapterTestSuite) TestRSI() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "rsi", map[string]any{"close": "close", "length": 5})
	suite.NoError(err)
	suite.True(tbl.HasColumn("RSI_5"))

	col, _ := tbl.Column("RSI_5")
	last := col[len(col)-1]
	suite.GreaterOrEqual(last, 0.0)
	suite.LessOrEqual(last, 100.0)
}

func (suite *TechanAdapterTestSuite) TestMACDThreeColumns() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "macd", map[string]any{"close": "close", "fast": 3, "slow": 6, "signal": 2})
	suite.NoError(err)
	suite.True(tbl.HasColumn("MACD_3_6_2"))
	suite.True(tbl.HasColumn("MACDs_3_6_2"))
	suite.True(tbl.HasColumn("MACDh_3_6_2"))

	macdCol, _ := tbl.Column("MACD_3_6_2")
	signalCol, _ := tbl.Column("MACDs_3_6_2")
	histCol, _ := tbl.Column("MACDh_3_6_2")
	last := len(macdCol) - 1
	suite.InDelta(macdCol[last]-signalCol[last], histCol[last], 1e-9)
}

func (suite *TechanAdapterTestSuite) TestBollingerBandOrdering() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "bbands", map[string]any{"close": "close", "length": 5, "std": 2.0})
	suite.NoError(err)

	lower, _ := tbl.Column("BBL_5_2")
	middle, _ := tbl.Column("BBM_5_2")
	upper, _ := tbl.Column("BBU_5_2")
	last := tbl.Len() - 1
	suite.LessOrEqual(lower[last], middle[last])
	suite.LessOrEqual(middle[last], upper[last])
}

func (suite *TechanAdapterTestSuite) TestATRPositive() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "atr", map[string]any{
		"high": "high", "low": "low", "close": "close", "length": 5,
	})
	suite.NoError(err)

	col, ok := tbl.Column("ATR_5")
	suite.True(ok)
	suite.Greater(col[len(col)-1], 0.0)
}

func (suite *TechanAdapterTestSuite) TestStochColumns() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "stoch", map[string]any{
		"high": "high", "low": "low", "close": "close",
		"k": 5, "d": 3, "smooth_k": 3,
	})
	suite.NoError(err)
	suite.True(tbl.HasColumn("STOCHk_5_3_3"))
	suite.True(tbl.HasColumn("STOCHd_5_3_3"))
}

func (suite *TechanAdapterTestSuite) TestUnknownFunction() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "supertrend", map[string]any{"close": "close"})
	suite.Error(err)
	suite.Contains(err.Error(), "not implemented")
}

func (suite *TechanAdapterTestSuite) TestMissingColumn() {
	tbl := table.New()
	suite.NoError(tbl.AddColumn("price", []float64{1, 2, 3}))

	err := suite.adapter.Call(tbl, "sma", map[string]any{"close": "missing", "length": 2})
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *TechanAdapterTestSuite) TestMissingArgument() {
	tbl := suite.sampleTable()

	err := suite.adapter.Call(tbl, "sma", map[string]any{"close": "close"})
	suite.Error(err)
	suite.Contains(err.Error(), `missing argument "length"`)
}
