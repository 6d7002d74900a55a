package models

// CustomerStats is derived state, always recomputed from the transaction
// log. OldDues is deliberately not folded into TotalDue.
type CustomerStats struct {
	CurrentJarBalance     int     `json:"currentJarBalance"`
	CurrentThermosBalance int     `json:"currentThermosBalance"`
	TotalDue              float64 `json:"totalDue"`
}
