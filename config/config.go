// Package config 从 YAML 文件加载图表配置，环境变量优先于文件
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rodrigo-brito/ninjaplot/plot"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config 图表工具的全部配置
type Config struct {
	Figure   Figure   `yaml:"figure"`
	Key      Key      `yaml:"key"`
	Candles  Candles  `yaml:"candles"`
	Bands    Bands    `yaml:"bands"`
	Telegram Telegram `yaml:"telegram"`
	Storage  Storage  `yaml:"storage"`
}

// Figure 图形的全局设置
type Figure struct {
	Title    string  `yaml:"title"`
	Terminal string  `yaml:"terminal"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`
	BoxWidth float64 `yaml:"box_width"`
	Output   string  `yaml:"output"`
	Gnuplot  string  `yaml:"gnuplot"`
}

// Key 图例设置
type Key struct {
	Hidden   bool   `yaml:"hidden"`
	Boxed    bool   `yaml:"boxed"`
	Position string `yaml:"position"`
	Title    string `yaml:"title"`
}

// Candles K线样式
type Candles struct {
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
}

// Bands 指标填充区域的样式
type Bands struct {
	Color string `yaml:"color"`
	// 未设置时为 nil，0 表示完全透明
	Opacity *float64 `yaml:"opacity"`
}

const defaultBandOpacity = 0.3

// FillOpacity 返回填充透明度，未设置时使用默认值
func (b Bands) FillOpacity() float64 {
	if b.Opacity == nil {
		return defaultBandOpacity
	}
	return *b.Opacity
}

type Telegram struct {
	Token string `yaml:"token"`
	Users []int  `yaml:"users"`
}

type Storage struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NINJAPLOT_GNUPLOT"); v != "" {
		cfg.Figure.Gnuplot = v
	}
	if v := os.Getenv("NINJAPLOT_OUTPUT"); v != "" {
		cfg.Figure.Output = v
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Figure.Terminal == "" {
		c.Figure.Terminal = "svg"
	}
	if c.Figure.Width == 0 {
		c.Figure.Width = 1280
	}
	if c.Figure.Height == 0 {
		c.Figure.Height = 720
	}
	if c.Bands.Color == "" {
		c.Bands.Color = "gray"
	}
	if c.Bands.Opacity == nil {
		opacity := defaultBandOpacity
		c.Bands.Opacity = &opacity
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "ninjaplot.db"
	}
}

// Validate checks that every field can be applied to a figure.
func (c *Config) Validate() error {
	if _, err := plot.ParseTerminal(c.Figure.Terminal); err != nil {
		return fmt.Errorf("%w: figure.terminal: %v", ErrInvalidConfig, err)
	}
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return fmt.Errorf("%w: figure size must be positive", ErrInvalidConfig)
	}
	if c.Figure.BoxWidth < 0 {
		return fmt.Errorf("%w: figure.box_width must be positive", ErrInvalidConfig)
	}
	if c.Key.Position != "" {
		if _, err := plot.ParsePosition(c.Key.Position); err != nil {
			return fmt.Errorf("%w: key.position: %v", ErrInvalidConfig, err)
		}
	}
	if c.Candles.Color != "" {
		if _, err := plot.ParseColor(c.Candles.Color); err != nil {
			return fmt.Errorf("%w: candles.color: %v", ErrInvalidConfig, err)
		}
	}
	if c.Candles.LineWidth < 0 {
		return fmt.Errorf("%w: candles.line_width must be positive", ErrInvalidConfig)
	}
	if _, err := plot.ParseColor(c.Bands.Color); err != nil {
		return fmt.Errorf("%w: bands.color: %v", ErrInvalidConfig, err)
	}
	if o := c.Bands.Opacity; o != nil && (*o < 0 || *o > 1) {
		return fmt.Errorf("%w: bands.opacity must be in the range [0, 1]", ErrInvalidConfig)
	}
	if c.Telegram.Token != "" && len(c.Telegram.Users) == 0 {
		return fmt.Errorf("%w: telegram.users is required with a token", ErrInvalidConfig)
	}
	return nil
}

// Apply 把图形设置写入 figure，需要先调用 Validate
func (f Figure) Apply(fig *plot.Figure) error {
	terminal, err := plot.ParseTerminal(f.Terminal)
	if err != nil {
		return err
	}

	fig.Terminal(terminal).Size(f.Width, f.Height)
	if f.Title != "" {
		fig.Title(f.Title)
	}
	if f.Font != "" {
		fig.Font(f.Font)
	}
	if f.FontSize > 0 {
		fig.FontSize(f.FontSize)
	}
	if f.BoxWidth > 0 {
		fig.BoxWidth(f.BoxWidth)
	}
	if f.Output != "" {
		fig.Output(f.Output)
	}
	return nil
}

// Apply 配置图例，未设置任何字段时不创建图例
func (k Key) Apply(fig *plot.Figure) error {
	if k == (Key{}) {
		return nil
	}

	var position *plot.Position
	if k.Position != "" {
		p, err := plot.ParsePosition(k.Position)
		if err != nil {
			return err
		}
		position = &p
	}

	fig.ConfigureKey(func(key *plot.KeyProperties) {
		key.Boxed(k.Boxed)
		if k.Title != "" {
			key.Title(k.Title)
		}
		if position != nil {
			key.Position(*position)
		}
		if k.Hidden {
			key.Hide()
		}
	})
	return nil
}

// Apply 把图形和图例设置写入 figure
func (c *Config) Apply(fig *plot.Figure) error {
	if err := c.Figure.Apply(fig); err != nil {
		return err
	}
	return c.Key.Apply(fig)
}
