package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/glebarez/sqlite"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"github.com/xhit/go-str2duration/v2"

	"github.com/rodrigo-brito/ninjaplot"
	"github.com/rodrigo-brito/ninjaplot/config"
	"github.com/rodrigo-brito/ninjaplot/download"
	"github.com/rodrigo-brito/ninjaplot/exchange"
	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/notification"
	"github.com/rodrigo-brito/ninjaplot/plot"
	"github.com/rodrigo-brito/ninjaplot/plot/indicator"
	"github.com/rodrigo-brito/ninjaplot/service"
	"github.com/rodrigo-brito/ninjaplot/storage"
	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

var errNoCandles = errors.New("either --csv or --binance is required")

// feedFlags 读取K线数据需要的参数
func feedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "csv",
			Usage: "candles CSV file",
		},
		&cli.BoolFlag{
			Name:  "binance",
			Usage: "download the candles from Binance instead of reading --csv",
		},
		&cli.IntFlag{
			Name:  "days",
			Value: 7,
			Usage: "days of history downloaded with --binance",
		},
		&cli.StringFlag{
			Name:  "pair",
			Value: "BTCUSDT",
			Usage: "eg. BTCUSDT",
		},
		&cli.StringFlag{
			Name:  "timeframe",
			Value: "1h",
			Usage: "timeframe of the CSV candles",
		},
		&cli.StringFlag{
			Name:  "resample",
			Usage: "target timeframe, defaults to --timeframe",
		},
		&cli.IntFlag{
			Name:  "last",
			Usage: "plot only the last N candles",
		},
		&cli.BoolFlag{
			Name:  "heikin-ashi",
			Usage: "use Heikin Ashi candles",
		},
	}
}

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "storage-driver",
			Value: "bunt",
			Usage: "chart archive backend: bunt or sqlite",
		},
	}
}

func plotCommand() *cli.Command {
	return &cli.Command{
		Name:  "plot",
		Usage: "Build a candlestick chart from a CSV file",
		Flags: append(append([]cli.Flag{
			&cli.IntFlag{Name: "bollinger", Usage: "Bollinger Bands period, 0 to disable"},
			&cli.Float64Flag{Name: "bollinger-dev", Value: 2, Usage: "Bollinger Bands standard deviations"},
			&cli.IntFlag{Name: "willr", Usage: "Williams %R period, 0 to disable"},
			&cli.IntFlag{Name: "supertrend", Usage: "SuperTrend ATR period, 0 to disable"},
			&cli.Float64Flag{Name: "supertrend-factor", Value: 3, Usage: "SuperTrend ATR multiplier"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "rendered image path"},
			&cli.StringFlag{Name: "script", Usage: "write the gnuplot script to this path"},
			&cli.BoolFlag{Name: "draw", Usage: "render the chart with gnuplot"},
			&cli.StringFlag{Name: "archive", Usage: "archive the script under this name"},
			&cli.BoolFlag{Name: "telegram", Usage: "send the rendered chart to telegram users"},
		}, feedFlags()...), storageFlags()...),
		Action: runPlot,
	}
}

func downloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "Download historical candles from Binance into a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pair", Value: "BTCUSDT", Usage: "eg. BTCUSDT"},
			&cli.StringFlag{Name: "timeframe", Value: "1h", Usage: "eg. 1h"},
			&cli.IntFlag{Name: "days", Value: 30, Usage: "days of history, ignored with --start"},
			&cli.TimestampFlag{Name: "start", Layout: "2006-01-02", Usage: "eg. 2024-01-01"},
			&cli.TimestampFlag{Name: "end", Layout: "2006-01-02", Usage: "eg. 2024-02-01"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "CSV output path"},
			&cli.BoolFlag{Name: "heikin-ashi", Usage: "use Heikin Ashi candles"},
		},
		Action: runDownload,
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:   "inspect",
		Usage:  "Print a summary of a CSV file and the plots of its chart",
		Flags:  feedFlags(),
		Action: runInspect,
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List archived charts",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "filter by name"},
			&cli.StringFlag{Name: "pair", Usage: "filter by pair"},
			&cli.StringFlag{Name: "since", Usage: "only charts archived in this period, eg. 7d"},
		}, storageFlags()...),
		Action: runHistory,
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// binanceFeeder 创建币安行情源，测试中可以替换
var binanceFeeder = func(ctx context.Context, options ...exchange.BinanceOption) (service.Feeder, error) {
	return exchange.NewBinance(ctx, options...)
}

// loadDataframe 读取 CSV 或从币安下载K线，并按需要重采样和截取
func loadDataframe(c *cli.Context) (model.Dataframe, string, error) {
	pair := strings.ToUpper(c.String("pair"))
	if asset, quote := exchange.SplitAssetQuote(pair); asset == "" || quote == "" {
		return model.Dataframe{}, "", fmt.Errorf("%w: %s", exchange.ErrInvalidPair, pair)
	}

	timeframe := c.String("timeframe")
	target := c.String("resample")
	if target == "" {
		target = timeframe
	}

	var (
		df  model.Dataframe
		err error
	)
	switch {
	case c.Bool("binance"):
		df, err = downloadDataframe(c, pair, target)
	case c.String("csv") != "":
		df, err = readDataframe(c, pair, timeframe, target)
	default:
		err = errNoCandles
	}
	if err != nil {
		return model.Dataframe{}, "", err
	}

	if last := c.Int("last"); last > 0 && last < len(df.Close) {
		df = df.Sample(last)
	}
	return df, target, nil
}

// downloadDataframe 按目标时间框架直接从币安下载最近 --days 天的K线
func downloadDataframe(c *cli.Context, pair, timeframe string) (model.Dataframe, error) {
	var options []exchange.BinanceOption
	if c.Bool("heikin-ashi") {
		options = append(options, exchange.WithBinanceHeikinAshiCandle())
	}

	feeder, err := binanceFeeder(c.Context, options...)
	if err != nil {
		return model.Dataframe{}, err
	}
	return download.NewDownloader(feeder).Dataframe(c.Context, pair, timeframe, download.WithDays(c.Int("days")))
}

func readDataframe(c *cli.Context, pair, timeframe, target string) (model.Dataframe, error) {
	feed, err := exchange.NewCSVFeed(target, exchange.PairFeed{
		Pair:       pair,
		File:       c.String("csv"),
		Timeframe:  timeframe,
		HeikinAshi: c.Bool("heikin-ashi"),
	})
	if err != nil {
		return model.Dataframe{}, err
	}

	df := feed.Dataframe(pair, target)
	if len(df.Close) == 0 {
		return model.Dataframe{}, fmt.Errorf("%w: %s", exchange.ErrInsufficientData, c.String("csv"))
	}
	return df, nil
}

// chartIndicators 根据参数创建指标，填充颜色和透明度来自配置
func chartIndicators(cfg *config.Config, bollinger int, bollingerDev float64, willr, supertrend int,
	supertrendFactor float64) ([]indicator.Indicator, error) {

	color, err := plot.ParseColor(cfg.Bands.Color)
	if err != nil {
		return nil, err
	}

	indicators := make([]indicator.Indicator, 0)
	if bollinger > 0 {
		indicators = append(indicators, indicator.BollingerBands(bollinger, bollingerDev, color, cfg.Bands.FillOpacity()))
	}
	if supertrend > 0 {
		indicators = append(indicators, indicator.SuperTrend(supertrend, supertrendFactor, color, cfg.Bands.FillOpacity()))
	}
	if willr > 0 {
		indicators = append(indicators, indicator.WillR(willr, color))
	}
	return indicators, nil
}

// buildFigure 组合数据帧、指标和配置
func buildFigure(cfg *config.Config, df model.Dataframe, timeframe string,
	indicators []indicator.Indicator) (*plot.Figure, error) {

	options := []ninjaplot.Option{
		ninjaplot.WithTitle(fmt.Sprintf("%s %s", df.Pair, timeframe)),
		ninjaplot.WithIndicators(indicators...),
	}
	if cfg.Candles.Color != "" {
		color, err := plot.ParseColor(cfg.Candles.Color)
		if err != nil {
			return nil, err
		}
		options = append(options, ninjaplot.WithCandleColor(color))
	}
	if cfg.Candles.LineWidth > 0 {
		options = append(options, ninjaplot.WithCandleLineWidth(cfg.Candles.LineWidth))
	}

	fig := ninjaplot.NewChart(df, options...)
	if err := cfg.Apply(fig); err != nil {
		return nil, err
	}
	return fig, nil
}

func openStorage(driver, path string) (storage.Storage, error) {
	switch driver {
	case "bunt":
		return storage.FromFile(path)
	case "sqlite":
		return storage.FromSQL(sqlite.Open(path))
	}
	return nil, fmt.Errorf("unknown storage driver: %s", driver)
}

func closeStorage(store storage.Storage) {
	if closer, ok := store.(io.Closer); ok {
		log.CheckErr(log.WarnLevel, closer.Close())
	}
}

func runPlot(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	df, timeframe, err := loadDataframe(c)
	if err != nil {
		return err
	}

	indicators, err := chartIndicators(cfg, c.Int("bollinger"), c.Float64("bollinger-dev"),
		c.Int("willr"), c.Int("supertrend"), c.Float64("supertrend-factor"))
	if err != nil {
		return err
	}

	fig, err := buildFigure(cfg, df, timeframe, indicators)
	if err != nil {
		return err
	}

	output := cfg.Figure.Output
	if c.String("output") != "" {
		output = c.String("output")
		fig.Output(output)
	}

	if path := c.String("script"); path != "" {
		if err := fig.Save(path); err != nil {
			return err
		}
		log.Infof("script saved to %s", path)
	}

	if c.Bool("draw") {
		var options []plot.DrawOption
		if cfg.Figure.Gnuplot != "" {
			options = append(options, plot.WithCommand(cfg.Figure.Gnuplot))
		}
		if err := fig.Draw(c.Context, options...); err != nil {
			return err
		}
	}

	if name := c.String("archive"); name != "" {
		store, err := openStorage(c.String("storage-driver"), cfg.Storage.Path)
		if err != nil {
			return err
		}
		defer closeStorage(store)

		chart := &model.Chart{
			Name:      name,
			Pair:      df.Pair,
			Timeframe: timeframe,
			Plots:     len(fig.Plots()),
			Script:    fig.Script(),
		}
		if err := store.CreateChart(chart); err != nil {
			return err
		}
		log.Infof("chart archived with id %d", chart.ID)
	}

	if c.Bool("telegram") {
		if !c.Bool("draw") || output == "" {
			return fmt.Errorf("--telegram needs --draw and an output path")
		}
		telegram, err := notification.NewTelegram(cfg.Telegram.Token, cfg.Telegram.Users...)
		if err != nil {
			return err
		}
		return telegram.SendChart(output, fmt.Sprintf("%s %s", df.Pair, timeframe))
	}

	return nil
}

func runDownload(c *cli.Context) error {
	var options []exchange.BinanceOption
	if c.Bool("heikin-ashi") {
		options = append(options, exchange.WithBinanceHeikinAshiCandle())
	}

	feeder, err := binanceFeeder(c.Context, options...)
	if err != nil {
		return err
	}

	var interval download.Option
	if start := c.Timestamp("start"); start != nil {
		end := time.Now()
		if e := c.Timestamp("end"); e != nil {
			end = *e
		}
		interval = download.WithInterval(*start, end)
	} else {
		interval = download.WithDays(c.Int("days"))
	}

	pair := strings.ToUpper(c.String("pair"))
	return download.NewDownloader(feeder).Download(c.Context, pair, c.String("timeframe"), c.String("output"), interval)
}

func runInspect(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	df, timeframe, err := loadDataframe(c)
	if err != nil {
		return err
	}

	fig, err := buildFigure(cfg, df, timeframe, nil)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, df, timeframe)
	printPlots(os.Stdout, fig)
	return printHistogram(os.Stdout, df)
}

func runHistory(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openStorage(c.String("storage-driver"), cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	var filters []storage.ChartFilter
	if name := c.String("name"); name != "" {
		filters = append(filters, storage.WithName(name))
	}
	if pair := c.String("pair"); pair != "" {
		filters = append(filters, storage.WithPair(pair))
	}
	if since := c.String("since"); since != "" {
		duration, err := str2duration.ParseDuration(since)
		if err != nil {
			return err
		}
		filters = append(filters, storage.WithCreatedAfter(time.Now().Add(-duration)))
	}

	charts, err := store.Charts(filters...)
	if err != nil {
		return err
	}

	printCharts(os.Stdout, charts)
	return nil
}

// printSummary 输出数据帧的概要
func printSummary(w io.Writer, df model.Dataframe, timeframe string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pair", "Timeframe", "Candles", "First", "Last", "Low", "High"})
	table.Append([]string{
		df.Pair,
		timeframe,
		fmt.Sprintf("%d", len(df.Close)),
		df.Time[0].Format(time.RFC3339),
		df.Time[len(df.Time)-1].Format(time.RFC3339),
		plot.FormatFloat(df.Low.Min()),
		plot.FormatFloat(df.High.Max()),
	})
	table.Render()
}

// printPlots 输出图表中每个绘图元素的数据规模和脚本片段
func printPlots(w io.Writer, fig *plot.Figure) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Axes", "Rows", "Columns", "Script"})
	table.SetAutoWrapText(false)
	for i, p := range fig.Plots() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			p.Axes().String(),
			fmt.Sprintf("%d", p.Data().Rows()),
			p.Data().Using(),
			p.Script(),
		})
	}
	table.Render()
}

// printHistogram 收盘价分布
func printHistogram(w io.Writer, df model.Dataframe) error {
	fmt.Fprintln(w, "-- CLOSE PRICES --")
	hist := histogram.Hist(15, df.Close)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}

func printCharts(w io.Writer, charts []*model.Chart) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Pair", "Timeframe", "Plots", "Created At"})
	for _, chart := range charts {
		table.Append([]string{
			fmt.Sprintf("%d", chart.ID),
			chart.Name,
			chart.Pair,
			chart.Timeframe,
			fmt.Sprintf("%d", chart.Plots),
			chart.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}
