package types

import (
	"encoding/json"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type DefinitionTestSuite struct {
	suite.Suite
}

func TestDefinitionSuite(t *testing.T) {
	suite.Run(t, new(DefinitionTestSuite))
}

func (suite *DefinitionTestSuite) sampleDefinition() IndicatorDefinition {
	return IndicatorDefinition{
		Name:        "RSI",
		Group:       GroupMomentum,
		Description: "Relative Strength Index, momentum oscillator scaled 0-100.",
		Inputs:      []string{"close"},
		Params: []ParamSpec{
			{Name: "window", Type: ParamTypeInt, Default: 14, Min: optional.Some(1.0), Description: "Averaging length"},
		},
		Synonyms:     []string{"relative strength index"},
		SourceLabels: map[string]string{"pandas_ta": "rsi", "talib": "RSI", "tradingview": "RSI"},
		NLP: NLPHints{
			SynonymsByLang: map[string][]string{
				"en": {"RSI", "Relative Strength Index"},
				"de": {"Relative-Stärke-Index", "RSI"},
			},
		},
		Bindings: []BackendBinding{
			{Backend: "pandas_ta", Func: "rsi", ParamMap: map[string]string{"window": "length"}, InputMap: map[string]string{"close": "close"}},
			{Backend: "techan", Func: "rsi", ParamMap: map[string]string{"window": "length"}, InputMap: map[string]string{"close": "close"}},
		},
	}
}

func (suite *DefinitionTestSuite) TestParamDefaults() {
	def := suite.sampleDefinition()
	defaults := def.ParamDefaults()
	suite.Len(defaults, 1)
	suite.Equal(14, defaults["window"])
}

func (suite *DefinitionTestSuite) TestParamTypes() {
	def := suite.sampleDefinition()
	suite.Equal(map[string]ParamType{"window": ParamTypeInt}, def.ParamTypes())
}

func (suite *DefinitionTestSuite) TestParamLookup() {
	def := suite.sampleDefinition()

	p, ok := def.Param("window")
	suite.True(ok)
	suite.Equal(ParamTypeInt, p.Type)

	_, ok = def.Param("missing")
	suite.False(ok)
}

func (suite *DefinitionTestSuite) TestBindingLookup() {
	def := suite.sampleDefinition()

	b, ok := def.Binding("techan")
	suite.True(ok)
	suite.Equal("rsi", b.Func)

	_, ok = def.Binding("vectorbt")
	suite.False(ok)
}

func (suite *DefinitionTestSuite) TestAliasesUnionLowerCased() {
	def := suite.sampleDefinition()
	aliases := def.Aliases()

	suite.Contains(aliases, "rsi")
	suite.Contains(aliases, "relative strength index")
	suite.Contains(aliases, "relative-stärke-index")
	// duplicates collapse: "RSI" appears as canonical name, source label, and
	// language synonym, but only once in the alias set
	count := 0
	for _, a := range aliases {
		if a == "rsi" {
			count++
		}
	}
	suite.Equal(1, count)
}

func (suite *DefinitionTestSuite) TestAliasesSkipEmptySourceLabels() {
	def := suite.sampleDefinition()
	def.SourceLabels["vectorbt"] = ""

	suite.NotContains(def.Aliases(), "")
}

func (suite *DefinitionTestSuite) TestJSONShape() {
	def := suite.sampleDefinition()

	data, err := json.Marshal(def)
	suite.NoError(err)

	var decoded map[string]any
	suite.NoError(json.Unmarshal(data, &decoded))
	suite.Equal("RSI", decoded["name"])
	suite.Equal("momentum", decoded["group"])
	suite.Equal([]any{"close"}, decoded["required_logical_inputs"])

	params, ok := decoded["params"].([]any)
	suite.True(ok)
	suite.Len(params, 1)
	first, ok := params[0].(map[string]any)
	suite.True(ok)
	suite.Equal("window", first["name"])
	suite.Equal("int", first["type"])

	bindings, ok := decoded["bindings"].([]any)
	suite.True(ok)
	binding, ok := bindings[0].(map[string]any)
	suite.True(ok)
	suite.Equal("pandas_ta", binding["backend_id"])
	suite.Equal("rsi", binding["target_function"])

	// formula is optional and absent here
	suite.NotContains(decoded, "formula")
}
