package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/gridtied/gridtied/config"
)

// PlotAllocation renders a grouped bar chart of every enabled item's
// capacity interval against the value GridTiedAllocation chose for
// it, plus the running cumulative sum across machines in
// configuration order, writing HTML to outputPath. allocation must be
// in the same order as cfg.EnabledItems().
func PlotAllocation(cfg *config.RunConfig, allocation config.Allocation, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return RenderAllocation(cfg, allocation, f)
}

// RenderAllocation writes the same chart PlotAllocation produces to
// an arbitrary writer, so callers can embed it without touching disk.
func RenderAllocation(cfg *config.RunConfig, allocation config.Allocation, w io.Writer) error {
	items := cfg.EnabledItems()
	if len(items) != len(allocation) {
		return fmt.Errorf("diagnostics: allocation has %d entries, expected %d enabled items", len(allocation), len(items))
	}

	byIndex := make(map[uint32]config.Entry, len(allocation))
	for _, entry := range allocation {
		byIndex[entry.Index] = entry
	}

	labels := make([]string, len(items))
	lower := make([]opts.BarData, len(items))
	upper := make([]opts.BarData, len(items))
	value := make([]opts.BarData, len(items))
	cumulative := make([]opts.BarData, len(items))

	var running float32
	for i, item := range items {
		labels[i] = strconv.FormatUint(uint64(item.Index), 10)
		lower[i] = opts.BarData{Value: item.LowerBound}
		upper[i] = opts.BarData{Value: item.UpperBound}
		value[i] = opts.BarData{Value: byIndex[item.Index].Value}

		running += byIndex[item.Index].Value
		cumulative[i] = opts.BarData{Value: running}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "gridtied allocation",
			Subtitle: resonanceSubtitle(items),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "machine index"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "output",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	bar.SetXAxis(labels).
		AddSeries("lower bound", lower).
		AddSeries("upper bound", upper).
		AddSeries("assigned value", value).
		AddSeries("cumulative sum", cumulative).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return bar.Render(w)
}

// resonanceSubtitle summarizes each item's forbidden sub-intervals
// into a compact chart subtitle, since go-echarts' bar chart has no
// first-class "forbidden band" primitive to overlay per category.
func resonanceSubtitle(items []config.ItemConfig) string {
	subtitle := ""
	for _, item := range items {
		if len(item.Resonances) == 0 {
			continue
		}

		subtitle += fmt.Sprintf("item %d: ", item.Index)
		for _, res := range item.Resonances {
			subtitle += fmt.Sprintf("(%.3g,%.3g) ", res.A, res.B)
		}
	}

	return subtitle
}
