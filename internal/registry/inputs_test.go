package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// InputsTestSuite covers logical-input resolution against table columns.
type InputsTestSuite struct {
	suite.Suite
}

func TestInputsSuite(t *testing.T) {
	suite.Run(t, new(InputsTestSuite))
}

func (suite *InputsTestSuite) TestDefaultAliasesFirstMatchWins() {
	r, err := New()
	suite.Require().NoError(err)

	tbl := table.New()
	suite.Require().NoError(tbl.AddColumn("Adj Close", []float64{1, 2, 3}))
	suite.Require().NoError(tbl.AddColumn("price", []float64{1, 2, 3}))

	// "price" appears before "Adj Close" in the default close alias list
	name, err := r.findColumn(tbl, "close")
	suite.Require().NoError(err)
	suite.Equal("price", name)
}

func (suite *InputsTestSuite) TestLiteralFallback() {
	r, err := New(WithInputAliases(map[string][]string{}))
	suite.Require().NoError(err)

	tbl := table.New()
	suite.Require().NoError(tbl.AddColumn("close", []float64{1, 2, 3}))

	name, err := r.findColumn(tbl, "close")
	suite.Require().NoError(err)
	suite.Equal("close", name)
}

func (suite *InputsTestSuite) TestMissingInputNamesColumns() {
	r, err := New()
	suite.Require().NoError(err)

	tbl := table.New()
	suite.Require().NoError(tbl.AddColumn("bid", []float64{1}))

	_, err = r.findColumn(tbl, "volume")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingInput))
	suite.Contains(err.Error(), "volume")
	suite.Contains(err.Error(), "bid")
}

func (suite *InputsTestSuite) TestLoadInputAliasesMergesOverDefaults() {
	path := filepath.Join(suite.T().TempDir(), "aliases.yaml")
	content := "input_aliases:\n  close: [last, px]\n"
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	aliases, err := LoadInputAliases(path)
	suite.Require().NoError(err)
	suite.Equal([]string{"last", "px"}, aliases["close"])
	suite.Equal(DefaultInputAliases()["volume"], aliases["volume"])
}

func (suite *InputsTestSuite) TestLoadInputAliasesMissingFile() {
	_, err := LoadInputAliases(filepath.Join(suite.T().TempDir(), "nope.yaml"))
	suite.Require().Error(err)
}
