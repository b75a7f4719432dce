package table

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TableTestSuite struct {
	suite.Suite
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

func (suite *TableTestSuite) TestAddColumnPreservesOrder() {
	tbl := New()
	suite.NoError(tbl.AddColumn("open", []float64{1, 2}))
	suite.NoError(tbl.AddColumn("close", []float64{1.5, 2.5}))
	suite.NoError(tbl.AddColumn("RSI_14", []float64{50, 55}))

	suite.Equal([]string{"open", "close", "RSI_14"}, tbl.Columns())
	suite.Equal(2, tbl.Len())
}

func (suite *TableTestSuite) TestAddColumnDuplicate() {
	tbl := New()
	suite.NoError(tbl.AddColumn("close", []float64{1}))

	err := tbl.AddColumn("close", []float64{2})
	suite.Error(err)
	suite.Contains(err.Error(), "already exists")
}

func (suite *TableTestSuite) TestAddColumnLengthMismatch() {
	tbl := New()
	suite.NoError(tbl.AddColumn("close", []float64{1, 2, 3}))

	err := tbl.AddColumn("volume", []float64{1})
	suite.Error(err)
}

func (suite *TableTestSuite) TestSetColumnOverwriteKeepsPosition() {
	tbl := New()
	suite.NoError(tbl.AddColumn("a", []float64{1}))
	suite.NoError(tbl.AddColumn("b", []float64{2}))

	suite.NoError(tbl.SetColumn("a", []float64{9}))
	suite.Equal([]string{"a", "b"}, tbl.Columns())

	col, ok := tbl.Column("a")
	suite.True(ok)
	suite.Equal([]float64{9}, col)
}

func (suite *TableTestSuite) TestColumnMissing() {
	tbl := New()
	_, ok := tbl.Column("nope")
	suite.False(ok)
	suite.False(tbl.HasColumn("nope"))
}

func (suite *TableTestSuite) TestColumnsReturnsCopy() {
	tbl := New()
	suite.NoError(tbl.AddColumn("close", []float64{1}))

	names := tbl.Columns()
	names[0] = "mutated"
	suite.Equal([]string{"close"}, tbl.Columns())
}

func (suite *TableTestSuite) TestSetTimes() {
	tbl := New()
	suite.NoError(tbl.AddColumn("close", []float64{1, 2}))

	times := []time.Time{time.Now(), time.Now().Add(time.Minute)}
	suite.NoError(tbl.SetTimes(times))
	suite.Equal(times, tbl.Times())

	suite.Error(tbl.SetTimes(times[:1]))
}

func (suite *TableTestSuite) TestReadCSV() {
	csvData := strings.Join([]string{
		"time,open,high,low,close,volume,note",
		"2024-01-02,10,12,9,11,1000,first",
		"2024-01-03,11,13,10,12,1100,second",
	}, "\n")

	tbl, err := ReadCSV(strings.NewReader(csvData))
	suite.NoError(err)
	suite.Equal([]string{"open", "high", "low", "close", "volume"}, tbl.Columns())
	suite.Equal(2, tbl.Len())
	suite.Len(tbl.Times(), 2)

	closeCol, ok := tbl.Column("close")
	suite.True(ok)
	suite.Equal([]float64{11, 12}, closeCol)
}

func (suite *TableTestSuite) TestReadCSVEpochSeconds() {
	csvData := "timestamp,close\n1704153600,11\n1704240000,12\n"

	tbl, err := ReadCSV(strings.NewReader(csvData))
	suite.NoError(err)
	suite.Len(tbl.Times(), 2)
	suite.Equal([]string{"close"}, tbl.Columns())
}
