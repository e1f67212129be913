package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ProductTotal is the summed sales amount for one product.
type ProductTotal struct {
	Product string
	Total   decimal.Decimal
}

// DailyTotal is the summed sales amount for one calendar day.
type DailyTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// TotalsByProduct groups a ledger snapshot by product name and sums the
// amounts, non-numeric amounts counting as zero. Output is normalized to
// ascending product name; that ordering is the stable base TopN ties are
// broken against. An empty snapshot yields an empty slice, never an error.
func TotalsByProduct(records []SaleRecord) []ProductTotal {
	sums := make(map[string]decimal.Decimal, len(records))
	for _, r := range records {
		sums[r.ProductName] = sums[r.ProductName].Add(r.Amount())
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	totals := make([]ProductTotal, 0, len(names))
	for _, name := range names {
		totals = append(totals, ProductTotal{Product: name, Total: sums[name]})
	}
	return totals
}

// TopN returns the first n entries of totals sorted descending by summed
// amount. The sort is stable: equal totals keep their relative order from
// TotalsByProduct. Fewer than n entries are returned when fewer distinct
// products exist.
func TopN(totals []ProductTotal, n int) []ProductTotal {
	ranked := make([]ProductTotal, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// DailySeries groups a snapshot by calendar date and sums the amounts,
// sorted ascending by date. Records whose sale date does not parse are
// excluded (lenient policy). A non-empty productFilter restricts the series
// to that product's records first.
func DailySeries(records []SaleRecord, productFilter string) []DailyTotal {
	sums := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		if productFilter != "" && r.ProductName != productFilter {
			continue
		}
		day, err := r.Date()
		if err != nil {
			continue
		}
		sums[day] = sums[day].Add(r.Amount())
	}

	days := make([]time.Time, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]DailyTotal, 0, len(days))
	for _, day := range days {
		series = append(series, DailyTotal{Date: day, Total: sums[day]})
	}
	return series
}

// Products returns the distinct product names of a snapshot, ascending.
func Products(records []SaleRecord) []string {
	seen := make(map[string]bool, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		if !seen[r.ProductName] {
			seen[r.ProductName] = true
			names = append(names, r.ProductName)
		}
	}
	sort.Strings(names)
	return names
}
