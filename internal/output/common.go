package output

// Output formats accepted by -o/--output.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// Prefix starts every diagnostic line of the text report.
const Prefix = "[pafcheck] "
