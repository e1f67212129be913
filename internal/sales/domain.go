package sales

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wire field names. They double as the CSV column headers, so they are the
// contract between the ledger file and every other component.
const (
	FieldProductName = "Product Name"
	FieldSalesAmount = "Sales Amount"
	FieldSaleDate    = "Sale Date"
	FieldCustomer    = "Customer"
)

// RequiredFields lists the submission fields in validation order.
var RequiredFields = []string{FieldProductName, FieldSalesAmount, FieldSaleDate, FieldCustomer}

// Header is the fixed four-column header of the ledger file.
var Header = []string{FieldProductName, FieldSalesAmount, FieldSaleDate, FieldCustomer}

const (
	readDateFormat  = "2006-1-2" // permissive, accepts single-digit month/day
	writeDateFormat = "2006-01-02"
)

// SaleRecord is one sales transaction, one row of the ledger. Amount and date
// are kept as the text they were submitted with; records already persisted
// may hold values that do not parse, and that is handled lazily on read.
type SaleRecord struct {
	ProductName string `json:"Product Name"`
	SalesAmount string `json:"Sales Amount"`
	SaleDate    string `json:"Sale Date"`
	Customer    string `json:"Customer"`
}

// Amount returns the sales amount as a decimal. Non-numeric or empty values
// count as zero, they are never rejected on read.
func (r SaleRecord) Amount() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(r.SalesAmount))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Date parses the sale date. Callers decide whether a parse failure excludes
// the record (lenient aggregation) or aborts the operation (chart rendering).
func (r SaleRecord) Date() (time.Time, error) {
	return time.Parse(readDateFormat, strings.TrimSpace(r.SaleDate))
}

// DateLabel formats the sale date for documents, with a literal placeholder
// when the date does not parse.
func (r SaleRecord) DateLabel() string {
	day, err := r.Date()
	if err != nil {
		return "Invalid Date"
	}
	return day.Format(writeDateFormat)
}

func (r SaleRecord) row() []string {
	return []string{r.ProductName, r.SalesAmount, r.SaleDate, r.Customer}
}

// recordFromRow accepts persisted rows as-is: short rows are padded and extra
// columns dropped.
func recordFromRow(row []string) SaleRecord {
	var cols [4]string
	copy(cols[:], row)
	return SaleRecord{
		ProductName: cols[0],
		SalesAmount: cols[1],
		SaleDate:    cols[2],
		Customer:    cols[3],
	}
}
