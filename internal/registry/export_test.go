package registry

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ExportTestSuite covers the JSON catalog export.
type ExportTestSuite struct {
	suite.Suite
	registry *Registry
}

func (suite *ExportTestSuite) SetupTest() {
	r, err := New()
	suite.Require().NoError(err)
	suite.registry = r
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (suite *ExportTestSuite) TestWriteJSONShape() {
	var buf bytes.Buffer
	suite.Require().NoError(suite.registry.WriteJSON(&buf))

	var catalog []map[string]any
	suite.Require().NoError(json.Unmarshal(buf.Bytes(), &catalog))
	suite.Len(catalog, len(suite.registry.List()))

	// entries follow List order
	suite.Equal(suite.registry.List()[0], catalog[0]["name"])

	var rsi map[string]any
	for _, entry := range catalog {
		if entry["name"] == "RSI" {
			rsi = entry
		}
	}
	suite.Require().NotNil(rsi)
	suite.Equal("momentum", rsi["group"])
	suite.Contains(rsi, "required_logical_inputs")
	suite.Contains(rsi, "params")
	suite.Contains(rsi, "nlp")
	suite.Contains(rsi, "formula")

	bindings, ok := rsi["bindings"].([]any)
	suite.Require().True(ok)
	suite.Require().NotEmpty(bindings)
	first, ok := bindings[0].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(first, "backend_id")
	suite.Contains(first, "target_function")
}

func (suite *ExportTestSuite) TestFormulaOmittedWhenAbsent() {
	var buf bytes.Buffer
	suite.Require().NoError(suite.registry.WriteJSON(&buf))

	var catalog []map[string]any
	suite.Require().NoError(json.Unmarshal(buf.Bytes(), &catalog))

	for _, entry := range catalog {
		if formula, present := entry["formula"]; present {
			suite.NotNil(formula, "present formula must not be null: %v", entry["name"])
		}
	}
}

func (suite *ExportTestSuite) TestExportJSONWritesFile() {
	path := filepath.Join(suite.T().TempDir(), "catalog.json")
	suite.Require().NoError(suite.registry.ExportJSON(path))

	data, err := os.ReadFile(path)
	suite.Require().NoError(err)

	var catalog []map[string]any
	suite.Require().NoError(json.Unmarshal(data, &catalog))
	suite.NotEmpty(catalog)
}

func (suite *ExportTestSuite) TestCatalogSchema() {
	schema, err := CatalogSchema()
	suite.Require().NoError(err)

	var parsed map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &parsed))
	suite.Contains(parsed, "properties")

	properties, ok := parsed["properties"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(properties, "name")
	suite.Contains(properties, "bindings")
}
