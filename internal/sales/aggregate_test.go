package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedger() []SaleRecord {
	return []SaleRecord{
		{"Widget", "10", "2024-01-01", "Alice"},
		{"Widget", "5", "2024-01-02", "Bob"},
		{"Gadget", "20", "2024-01-01", "Carl"},
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotalsByProduct(t *testing.T) {
	totals := TotalsByProduct(testLedger())

	require.Len(t, totals, 2)
	assert.Equal(t, "Gadget", totals[0].Product, "normalized to ascending product name")
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Widget", totals[1].Product)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(15)))
}

func TestTotalsByProduct_NonNumericCountsAsZero(t *testing.T) {
	records := append(testLedger(), SaleRecord{"Widget", "not-a-number", "2024-01-03", "Dana"})
	totals := TotalsByProduct(records)

	require.Len(t, totals, 2)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(15)), "unparsable amount adds zero")
}

func TestTotalsByProduct_ConservationLaw(t *testing.T) {
	records := append(testLedger(), SaleRecord{"Gizmo", "not-a-number", "2024-01-03", "Dana"})

	ledgerSum := decimal.Zero
	for _, r := range records {
		ledgerSum = ledgerSum.Add(r.Amount())
	}
	totalsSum := decimal.Zero
	for _, pt := range TotalsByProduct(records) {
		totalsSum = totalsSum.Add(pt.Total)
	}

	assert.True(t, ledgerSum.Equal(totalsSum), "sum of per-product totals equals ledger sum")
}

func TestTotalsByProduct_EmptyLedger(t *testing.T) {
	assert.Empty(t, TotalsByProduct(nil))
	assert.Empty(t, DailySeries(nil, ""))
	assert.Empty(t, TopN(nil, 5))
}

func TestTopN(t *testing.T) {
	totals := TotalsByProduct(testLedger())

	top1 := TopN(totals, 1)
	require.Len(t, top1, 1)
	assert.Equal(t, "Gadget", top1[0].Product)
	assert.True(t, top1[0].Total.Equal(decimal.NewFromInt(20)))

	top5 := TopN(totals, 5)
	assert.Len(t, top5, 2, "fewer than n when fewer distinct products exist")
	assert.Equal(t, "Gadget", top5[0].Product)
	assert.Equal(t, "Widget", top5[1].Product)
}

func TestTopN_StableOnTies(t *testing.T) {
	records := []SaleRecord{
		{"Zeta", "10", "2024-01-01", "A"},
		{"Alpha", "10", "2024-01-01", "B"},
		{"Mid", "10", "2024-01-01", "C"},
	}
	totals := TotalsByProduct(records)
	ranked := TopN(totals, 3)

	require.Len(t, ranked, 3)
	// Equal totals keep the TotalsByProduct (name-ascending) order.
	assert.Equal(t, []string{ranked[0].Product, ranked[1].Product, ranked[2].Product},
		[]string{"Alpha", "Mid", "Zeta"})
}

func TestDailySeries_Overall(t *testing.T) {
	series := DailySeries(testLedger(), "")

	require.Len(t, series, 2)
	assert.Equal(t, day("2024-01-01"), series[0].Date)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, day("2024-01-02"), series[1].Date)
	assert.True(t, series[1].Total.Equal(decimal.NewFromInt(5)))
}

func TestDailySeries_ProductFilter(t *testing.T) {
	series := DailySeries(testLedger(), "Widget")

	require.Len(t, series, 2)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(10)))
	assert.True(t, series[1].Total.Equal(decimal.NewFromInt(5)))
}

func TestDailySeries_ExcludesUnparsableDates(t *testing.T) {
	records := append(testLedger(), SaleRecord{"Widget", "7", "not-a-date", "Dana"})
	series := DailySeries(records, "")

	seriesSum := decimal.Zero
	for _, dt := range series {
		seriesSum = seriesSum.Add(dt.Total)
	}
	assert.True(t, seriesSum.Equal(decimal.NewFromInt(35)),
		"daily totals cover only records with parsable dates")
}

func TestDailySeries_AcceptsSingleDigitMonthAndDay(t *testing.T) {
	records := []SaleRecord{{"Widget", "3", "2024-1-2", "Alice"}}
	series := DailySeries(records, "")

	require.Len(t, series, 1)
	assert.Equal(t, day("2024-01-02"), series[0].Date)
}

func TestProducts(t *testing.T) {
	assert.Equal(t, []string{"Gadget", "Widget"}, Products(testLedger()))
}
