package registry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// recordingAdapter is a stub backend that records the call it receives and
// mutates the table per a configurable function.
type recordingAdapter struct {
	id       string
	function string
	args     map[string]any
	apply    func(tbl *table.Table, args map[string]any) error
}

func (a *recordingAdapter) ID() string {
	return a.id
}

func (a *recordingAdapter) Call(tbl *table.Table, function string, args map[string]any) error {
	a.function = function
	a.args = args
	if a.apply != nil {
		return a.apply(tbl, args)
	}

	return nil
}

// ComputeTestSuite covers backend dispatch and output-column attribution.
type ComputeTestSuite struct {
	suite.Suite
	registry *Registry
	stub     *recordingAdapter
}

func (suite *ComputeTestSuite) SetupTest() {
	suite.stub = &recordingAdapter{id: "pandas_ta"}
	r, err := New(WithBackend(suite.stub))
	suite.Require().NoError(err)
	suite.registry = r
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeTestSuite))
}

func (suite *ComputeTestSuite) priceTable() *table.Table {
	tbl := table.New()
	closes := make([]float64, 40)
	highs := make([]float64, 40)
	lows := make([]float64, 40)
	for i := range closes {
		base := 100.0 + float64(i)
		if i%2 == 1 {
			base -= 0.4
		}
		closes[i] = base
		highs[i] = base + 1
		lows[i] = base - 1
	}
	suite.Require().NoError(tbl.AddColumn("Close", closes))
	suite.Require().NoError(tbl.AddColumn("High", highs))
	suite.Require().NoError(tbl.AddColumn("Low", lows))

	return tbl
}

func (suite *ComputeTestSuite) TestNewColumnsAttributedByDiff() {
	suite.stub.apply = func(tbl *table.Table, args map[string]any) error {
		values := make([]float64, tbl.Len())

		return tbl.AddColumn(fmt.Sprintf("RSI_%v", args["length"]), values)
	}

	tbl := suite.priceTable()
	result, err := suite.registry.Compute(tbl, "rsi", map[string]any{"window": "21"}, "pandas_ta")
	suite.Require().NoError(err)
	suite.Equal([]string{"RSI_21"}, result.NewColumns)
	suite.Equal("rsi", result.Spec.Func)
	suite.Equal("pandas_ta", result.Spec.Backend)
	suite.Equal(map[string]any{"window": 21}, result.Spec.Params)
}

func (suite *ComputeTestSuite) TestParamsTranslatedAndInputsResolved() {
	tbl := suite.priceTable()
	_, err := suite.registry.Compute(tbl, "RSI", nil, "pandas_ta")
	suite.Require().NoError(err)

	// window renamed per the binding's param map; logical close resolved to
	// the actual column name through the alias table
	suite.Equal(14, suite.stub.args["length"])
	suite.Equal("Close", suite.stub.args["close"])
}

func (suite *ComputeTestSuite) TestRewrittenColumnNotReportedAsNew() {
	suite.stub.apply = func(tbl *table.Table, args map[string]any) error {
		values := make([]float64, tbl.Len())
		for i := range values {
			values[i] = math.NaN()
		}

		return tbl.SetColumn("Close", values)
	}

	tbl := suite.priceTable()
	result, err := suite.registry.Compute(tbl, "RSI", nil, "pandas_ta")
	suite.Require().NoError(err)
	suite.Empty(result.NewColumns)
}

func (suite *ComputeTestSuite) TestMissingInputColumn() {
	tbl := table.New()
	suite.Require().NoError(tbl.AddColumn("Close", make([]float64, 10)))

	_, err := suite.registry.Compute(tbl, "ATR", nil, "pandas_ta")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingInput))
	suite.Contains(err.Error(), "high")
}

func (suite *ComputeTestSuite) TestUnknownBackend() {
	tbl := suite.priceTable()
	_, err := suite.registry.Compute(tbl, "RSI", nil, "talib")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedBackend))
}

func (suite *ComputeTestSuite) TestIndicatorWithoutBindingForBackend() {
	tbl := suite.priceTable()
	// OBV carries no techan binding
	_, err := suite.registry.Compute(tbl, "OBV", nil, "techan")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedBackend))
}

func (suite *ComputeTestSuite) TestValidationFailureLeavesTableUntouched() {
	tbl := suite.priceTable()
	before := tbl.Columns()

	_, err := suite.registry.Compute(tbl, "RSI", map[string]any{"period": 10}, "pandas_ta")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownParameter))
	suite.Equal(before, tbl.Columns())
	suite.Empty(suite.stub.function)
}

func (suite *ComputeTestSuite) TestBackendErrorPropagatesUnmodified() {
	backendErr := fmt.Errorf("numeric overflow in kernel")
	suite.stub.apply = func(tbl *table.Table, args map[string]any) error {
		return backendErr
	}

	tbl := suite.priceTable()
	_, err := suite.registry.Compute(tbl, "RSI", nil, "pandas_ta")
	suite.Require().ErrorIs(err, backendErr)
}

func (suite *ComputeTestSuite) TestComputeThroughTechanBackend() {
	tbl := suite.priceTable()
	result, err := suite.registry.Compute(tbl, "simple moving average", map[string]any{"window": 5}, "techan")
	suite.Require().NoError(err)
	suite.Equal([]string{"SMA_5"}, result.NewColumns)

	values, ok := tbl.Column("SMA_5")
	suite.Require().True(ok)
	suite.Len(values, tbl.Len())
}
