package reconcile

import (
	"errors"
	"testing"

	"bank-reconciler/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	companyColumns = []string{"DESCRIPCION", "VALOR\nCARGOS", "VALOR  ABONOS"}
	bankColumns    = []string{"Descripcion", "Cargo (US$)", "Abono (US$)"}
)

// newSideTable builds a table whose rows hold (description, debit, credit).
func newSideTable(columns []string, rows ...[]table.Cell) *table.Table {
	return table.New(columns, rows, 2)
}

func num(v float64) table.Cell { return table.NumberCell(v) }
func text(s string) table.Cell { return table.TextCell(s) }
func row(desc string, debit, credit table.Cell) []table.Cell {
	return []table.Cell{text(desc), debit, credit}
}

var empty = table.Cell{}

func TestDeriveKey_Company(t *testing.T) {
	tests := []struct {
		name   string
		debit  table.Cell
		credit table.Cell
		want   string
	}{
		{"CreditIsNC", empty, num(100), "NC100.0"},
		{"DebitIsNA", num(50), empty, "NA50.0"},
		{"BothPresentCreditWins", num(50), num(100), "NC100.0"},
		{"ZeroCreditFallsBackToDebit", num(50), num(0), "NA50.0"},
		{"BothZero", num(0), num(0), "SKIP"},
		{"BothEmpty", empty, empty, "SKIP"},
		{"NegativeIgnored", num(-10), empty, "SKIP"},
		{"TextAmount", text("1,234.50"), empty, "NA1234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newSideTable(companyColumns, row("x", tt.debit, tt.credit))
			key, err := DeriveKey(CompanySchema, tbl.Rows[0])
			require.NoError(t, err)
			assert.Equal(t, tt.want, key.String())
		})
	}
}

func TestDeriveKey_Bank(t *testing.T) {
	tests := []struct {
		name   string
		debit  table.Cell
		credit table.Cell
		want   string
	}{
		{"DebitIsNC", num(100), empty, "NC100.0"},
		{"CreditIsNA", empty, num(50), "NA50.0"},
		{"BothPresentDebitWins", num(50), num(100), "NC50.0"},
		{"BothZero", num(0), num(0), "SKIP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newSideTable(bankColumns, row("x", tt.debit, tt.credit))
			key, err := DeriveKey(BankSchema, tbl.Rows[0])
			require.NoError(t, err)
			assert.Equal(t, tt.want, key.String())
		})
	}
}

func TestDeriveKey_MissingColumnsReadAsZero(t *testing.T) {
	tbl := table.New([]string{"DESCRIPCION", "VALOR ABONOS"}, [][]table.Cell{
		{text("only credit"), num(20)},
		{text("nothing"), empty},
	}, 2)

	key, err := DeriveKey(CompanySchema, tbl.Rows[0])
	require.NoError(t, err)
	assert.Equal(t, "NC20.0", key.String())

	key, err = DeriveKey(CompanySchema, tbl.Rows[1])
	require.NoError(t, err)
	assert.True(t, key.IsSkip())

	// A table without any amount column skips every row
	none := table.New([]string{"A"}, [][]table.Cell{{num(5)}}, 2)
	key, err = DeriveKey(BankSchema, none.Rows[0])
	require.NoError(t, err)
	assert.True(t, key.IsSkip())
}

func TestDeriveKeys_FailFast(t *testing.T) {
	tbl := newSideTable(bankColumns,
		row("ok", num(10), empty),
		row("bad", text("diez"), empty),
		row("never read", num(20), empty),
	)

	keys, err := DeriveKeys(BankSchema, tbl)
	assert.Nil(t, keys)
	require.Error(t, err)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, Bank, rowErr.Side)
	assert.Equal(t, 3, rowErr.Line)

	var parseErr *AmountParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "diez", parseErr.Value)
	assert.Equal(t, `bank row 3: invalid amount "diez"`, err.Error())
}

func TestDeriveKeys_BadCreditAlsoFails(t *testing.T) {
	tbl := newSideTable(companyColumns, row("bad", num(10), text("n/a")))
	_, err := DeriveKeys(CompanySchema, tbl)

	var parseErr *AmountParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestSchemaFor(t *testing.T) {
	assert.Equal(t, CompanySchema, SchemaFor(Company))
	assert.Equal(t, BankSchema, SchemaFor(Bank))
	assert.True(t, CompanySchema.CreditFirst)
	assert.False(t, BankSchema.CreditFirst)
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("Company")
	require.NoError(t, err)
	assert.Equal(t, Company, side)

	side, err = ParseSide(" bank ")
	require.NoError(t, err)
	assert.Equal(t, Bank, side)

	_, err = ParseSide("broker")
	assert.Error(t, err)

	assert.Equal(t, "company", Company.String())
	assert.Equal(t, "bank", Bank.String())
}
