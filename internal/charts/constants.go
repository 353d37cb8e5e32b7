package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for timeseries chart height.
	MinChartHeight = 8

	// DefaultTerminalWidth is the fallback width when the terminal size is unknown.
	DefaultTerminalWidth = 80

	// BarRows is the number of rows each horizontal bar occupies.
	BarRows = 2
)
