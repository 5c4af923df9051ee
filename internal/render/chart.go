package render

// GridColor is the grid line color used on both chart axes.
const GridColor = "#222"

// ChartConfig describes a bar chart in the shape charting libraries expect:
// labels plus datasets, with display options.
type ChartConfig struct {
	Type    string       `json:"type"`
	Title   string       `json:"title,omitempty"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData holds the labels and datasets of a chart.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one data series.
type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// ChartOptions are the display options the insights charts use.
type ChartOptions struct {
	Responsive  bool   `json:"responsive"`
	Legend      bool   `json:"legend"`
	XGridColor  string `json:"xGridColor"`
	YGridColor  string `json:"yGridColor"`
	BeginAtZero bool   `json:"beginAtZero"`
}

// BarChart builds the chart for one frequency table: a single "Count"
// series, no legend, grid lines on both axes and a y axis starting at zero.
func BarChart(title string, freq Frequency) ChartConfig {
	return ChartConfig{
		Type:  "bar",
		Title: title,
		Data: ChartData{
			Labels:   append([]string(nil), freq.Keys...),
			Datasets: []Dataset{{Label: "Count", Data: freq.Values()}},
		},
		Options: ChartOptions{
			Responsive:  true,
			Legend:      false,
			XGridColor:  GridColor,
			YGridColor:  GridColor,
			BeginAtZero: true,
		},
	}
}

// Max returns the largest value in the chart's first dataset.
func (c ChartConfig) Max() int {
	m := 0
	if len(c.Data.Datasets) == 0 {
		return m
	}
	for _, v := range c.Data.Datasets[0].Data {
		if v > m {
			m = v
		}
	}
	return m
}
