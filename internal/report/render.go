package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Column layout of the report table. Label columns are left-aligned and
// truncated to their width; the account column is free-width and last.
const (
	incomeColWidth    = 20
	expenseColWidth   = 20
	amountFieldWidth  = 8 // numeric field inside the 10-char amount cell
	categoryColWidth  = 10
	breakdownColWidth = 12

	accountColHeader = "Account"
)

// ruleWidth spans the full column grid: five columns plus four separators.
const ruleWidth = incomeColWidth + expenseColWidth + (amountFieldWidth + 2) +
	categoryColWidth + len(accountColHeader) + 4

// Render formats an aggregated result as the fixed-width textual report.
// The output is a pure function of its input: rendering the same result
// twice yields byte-identical text.
func Render(res Result) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(strings.TrimRight(s, " "))
		b.WriteByte('\n')
	}

	line(strings.Join([]string{
		padCell("Income", incomeColWidth),
		padCell("Expense", expenseColWidth),
		padCell("Monthly", amountFieldWidth+2),
		padCell("Category", categoryColWidth),
		accountColHeader,
	}, " "))
	for _, row := range res.Rows {
		line(strings.Join([]string{
			padCell(row.IncomeLabel, incomeColWidth),
			padCell(row.ExpenseLabel, expenseColWidth),
			amountCell(row.MonthlyValue),
			padCell(deref(row.Category), categoryColWidth),
			deref(row.Account),
		}, " "))
	}
	line(strings.Repeat("-", ruleWidth))
	line("TOTAL:" + amountCell(res.Total))
	b.WriteByte('\n')

	line("Breakdown:")
	for _, bucket := range res.Breakdown {
		line(fmt.Sprintf("%*s  %*s",
			breakdownColWidth, bucket.Label,
			amountFieldWidth, bucket.Amount.StringFixed(2)))
	}
	b.WriteByte('\n')

	line("Coverage:")
	for _, bucket := range res.Coverage {
		if bucket.Label == UnallocatedBucket {
			line(fmt.Sprintf("%*s %s",
				amountFieldWidth, bucket.Amount.StringFixed(2), UnallocatedBucket))
			continue
		}
		line(fmt.Sprintf("%*s -> %s",
			amountFieldWidth, bucket.Amount.StringFixed(2), bucket.Label))
	}

	return b.String()
}

// amountCell renders a signed value in accounting style: non-negative
// values carry a space where the sign would sit, negative values are the
// absolute magnitude wrapped in parentheses. Both forms are the same width.
func amountCell(v decimal.Decimal) string {
	mag := fmt.Sprintf("%*s", amountFieldWidth, v.Abs().StringFixed(2))
	if v.IsNegative() {
		return "(" + mag + ")"
	}
	return " " + mag + " "
}

// padCell pads or truncates by rune count, so multibyte labels occupy
// the same number of columns as ASCII ones.
func padCell(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
