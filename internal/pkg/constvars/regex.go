package constvars

const (
	// Pattern check only, calendar validity is intentionally not enforced.
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
)
