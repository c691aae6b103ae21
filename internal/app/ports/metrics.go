package ports

// RunMetrics aggregates gameplay counters across sessions.
type RunMetrics interface {
	RecordSessionStarted()
	RecordTileMined(tileName string)
	RecordGameOver(cause string)
	RecordDepth(rows int)
}

// NopMetrics satisfies RunMetrics for hosts that do not collect KPIs.
type NopMetrics struct{}

func (NopMetrics) RecordSessionStarted()  {}
func (NopMetrics) RecordTileMined(string) {}
func (NopMetrics) RecordGameOver(string)  {}
func (NopMetrics) RecordDepth(int)        {}
