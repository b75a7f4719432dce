package registry

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// ParamsTestSuite covers parameter defaulting, coercion, and validation.
type ParamsTestSuite struct {
	suite.Suite
	registry *Registry
}

func (suite *ParamsTestSuite) SetupTest() {
	r, err := New()
	suite.Require().NoError(err)
	suite.registry = r
}

func TestParamsSuite(t *testing.T) {
	suite.Run(t, new(ParamsTestSuite))
}

func (suite *ParamsTestSuite) TestDefaultsFilled() {
	params, err := suite.registry.ValidateParams("MACD", nil)
	suite.Require().NoError(err)
	suite.Equal(map[string]any{"fast": 12, "slow": 26, "signal": 9}, params)
}

func (suite *ParamsTestSuite) TestStringCoercedToInt() {
	params, err := suite.registry.ValidateParams("RSI", map[string]any{"window": "20"})
	suite.Require().NoError(err)
	suite.Equal(20, params["window"])
}

func (suite *ParamsTestSuite) TestFloatTruncatedToInt() {
	params, err := suite.registry.ValidateParams("RSI", map[string]any{"window": 21.0})
	suite.Require().NoError(err)
	suite.Equal(21, params["window"])
}

func (suite *ParamsTestSuite) TestStringCoercedToFloat() {
	params, err := suite.registry.ValidateParams("BBANDS", map[string]any{"stdev": "2.5"})
	suite.Require().NoError(err)
	suite.Equal(2.5, params["stdev"])
	suite.Equal(20, params["window"])
}

func (suite *ParamsTestSuite) TestIdempotent() {
	first, err := suite.registry.ValidateParams("BBANDS", map[string]any{"window": "30", "stdev": 3})
	suite.Require().NoError(err)

	second, err := suite.registry.ValidateParams("BBANDS", first)
	suite.Require().NoError(err)
	suite.Equal(first, second)
}

func (suite *ParamsTestSuite) TestMinBoundaryAccepted() {
	params, err := suite.registry.ValidateParams("RSI", map[string]any{"window": 1})
	suite.Require().NoError(err)
	suite.Equal(1, params["window"])
}

func (suite *ParamsTestSuite) TestMinViolationRejected() {
	_, err := suite.registry.ValidateParams("RSI", map[string]any{"window": 0})
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameterValue))
}

func (suite *ParamsTestSuite) TestMaxViolationRejected() {
	_, err := suite.registry.ValidateParams("BBANDS", map[string]any{"stdev": 9.0})
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameterValue))
}

func (suite *ParamsTestSuite) TestUncoercibleValueRejected() {
	_, err := suite.registry.ValidateParams("RSI", map[string]any{"window": "twenty"})
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameterValue))
}

func (suite *ParamsTestSuite) TestUnknownParamListsKnownParams() {
	_, err := suite.registry.ValidateParams("MACD", map[string]any{"period": 10})
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownParameter))
	suite.Contains(err.Error(), "fast")
	suite.Contains(err.Error(), "slow")
	suite.Contains(err.Error(), "signal")
}

func (suite *ParamsTestSuite) TestUnknownIndicator() {
	_, err := suite.registry.ValidateParams("NOPE", nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownIndicator))
}

func (suite *ParamsTestSuite) TestOverridesDoNotMutateInput() {
	overrides := map[string]any{"window": "15"}
	_, err := suite.registry.ValidateParams("RSI", overrides)
	suite.Require().NoError(err)
	suite.Equal("15", overrides["window"])
}
