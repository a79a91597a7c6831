package config

// Flag bound values, filled by cobra before a command runs. Whether an
// optional quantity was supplied at all is read from the flag set, an empty
// string here does not mean absent.
var (
	Amount   string
	Memo     string
	Cloak    bool
	Fee      string
	FeeMojos string
	Yes      bool
)

var (
	ConfigPath  string
	LogLevel    string
	MetricsFile string
	Endpoints   []string
	Force       bool
)
