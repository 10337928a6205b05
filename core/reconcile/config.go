package reconcile

// Config holds defaults for reconciliation runs.
type Config struct {
	// CompanySkipRows is the number of title rows above the header of the company export.
	CompanySkipRows int `mapstructure:"company_skip_rows" default:"6"`
	// BankSkipRows is the number of title rows above the header of the bank statement.
	BankSkipRows int `mapstructure:"bank_skip_rows" default:"4"`
	// Mode is the default match mode (membership, multiset).
	Mode string `mapstructure:"mode" default:"membership"`
	// CompanyQuery reads the company side from the database when set.
	CompanyQuery string `mapstructure:"company_query" default:""`
	// ReportPrefix is the object prefix under which published reports are stored.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
}
