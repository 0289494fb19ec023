package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjaplot/plot"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ninjaplot.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, "svg", cfg.Figure.Terminal)
		require.Equal(t, 1280, cfg.Figure.Width)
		require.Equal(t, 0.3, cfg.Bands.FillOpacity())
		require.NoError(t, cfg.Validate())
	})

	t.Run("file values", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
figure:
  title: BTC
  terminal: png
  width: 800
  height: 600
  font_size: 10
key:
  boxed: true
  position: outside top right
candles:
  color: "#ff0000"
  line_width: 2
telegram:
  token: secret
  users: [1, 2]
`))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		require.Equal(t, "BTC", cfg.Figure.Title)
		require.Equal(t, "png", cfg.Figure.Terminal)
		require.Equal(t, 800, cfg.Figure.Width)
		require.Equal(t, 10.0, cfg.Figure.FontSize)
		require.True(t, cfg.Key.Boxed)
		require.Equal(t, 2.0, cfg.Candles.LineWidth)
		require.Equal(t, []int{1, 2}, cfg.Telegram.Users)
	})

	t.Run("zero band opacity is kept", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "bands:\n  opacity: 0\n"))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		require.NotNil(t, cfg.Bands.Opacity)
		require.Equal(t, 0.0, cfg.Bands.FillOpacity())
		require.Equal(t, 0.3, Bands{}.FillOpacity())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("NINJAPLOT_GNUPLOT", "gnuplot -p")
		t.Setenv("NINJAPLOT_OUTPUT", "env.svg")
		t.Setenv("TELEGRAM_TOKEN", "from-env")

		cfg, err := Load(writeConfig(t, "figure:\n  output: file.svg\n"))
		require.NoError(t, err)
		require.Equal(t, "gnuplot -p", cfg.Figure.Gnuplot)
		require.Equal(t, "env.svg", cfg.Figure.Output)
		require.Equal(t, "from-env", cfg.Telegram.Token)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "figure: [\n"))
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tt := []struct {
		name   string
		change func(*Config)
	}{
		{"terminal", func(c *Config) { c.Figure.Terminal = "pdf" }},
		{"size", func(c *Config) { c.Figure.Width = -1 }},
		{"box width", func(c *Config) { c.Figure.BoxWidth = -0.5 }},
		{"key position", func(c *Config) { c.Key.Position = "somewhere" }},
		{"candle color", func(c *Config) { c.Candles.Color = "ultraviolet" }},
		{"candle line width", func(c *Config) { c.Candles.LineWidth = -1 }},
		{"band color", func(c *Config) { c.Bands.Color = "#12" }},
		{"band opacity", func(c *Config) {
			opacity := 1.5
			c.Bands.Opacity = &opacity
		}},
		{"telegram users", func(c *Config) { c.Telegram.Token = "secret" }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.change(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	cfg := Default()
	cfg.Figure.Title = "BTC"
	cfg.Figure.Terminal = "dumb"
	cfg.Figure.Output = "btc.txt"
	cfg.Figure.BoxWidth = 0.8
	cfg.Key.Title = "legend"
	cfg.Key.Position = "inside top left"

	fig := plot.NewFigure()
	require.NoError(t, cfg.Apply(fig))

	require.Equal(t, "set output 'btc.txt'\n"+
		"set terminal dumb size 1280,720\n"+
		"set title 'BTC'\n"+
		"set boxwidth 0.8\n"+
		"set key on inside top left title 'legend' \n", fig.Script())

	t.Run("empty key is not configured", func(t *testing.T) {
		fig := plot.NewFigure()
		require.NoError(t, Default().Apply(fig))
		require.Nil(t, fig.Key())
	})

	t.Run("hidden key", func(t *testing.T) {
		fig := plot.NewFigure()
		require.NoError(t, Key{Hidden: true}.Apply(fig))
		require.Equal(t, "set key off\n", fig.Key().Script())
	})
}
