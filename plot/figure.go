package plot

import (
	"fmt"
	"os"
	"strings"

	"github.com/StudioSol/set"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// Figure 整张图：坐标轴配置、绘图列表和图例
// Figure is the single owned context of a chart: the axis registry, the
// ordered plot list and the optional key.
//
// A Figure is built by one goroutine and is not safe for concurrent use.
type Figure struct {
	axes     map[Axis]*AxisProperties
	usedAxes *set.LinkedHashSetString
	plots    []Plot
	key      *KeyProperties

	terminal Terminal
	width    int
	height   int
	title    *string
	font     *string
	fontSize *float64
	boxWidth *float64
	output   *string
}

// NewFigure 创建一个默认配置的图：SVG 输出，1280x720
// NewFigure creates an empty figure rendered as SVG at 1280x720
func NewFigure() *Figure {
	return &Figure{
		axes:     make(map[Axis]*AxisProperties),
		usedAxes: set.NewLinkedHashSetString(),
		terminal: SVG,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Title sets the title of the figure
func (f *Figure) Title(title string) *Figure {
	f.title = &title
	return f
}

// Terminal changes the output device
//
// SVG is used by default
func (f *Figure) Terminal(terminal Terminal) *Figure {
	f.terminal = terminal
	return f
}

// Size changes the size of the output, in pixels for SVG and PNG
func (f *Figure) Size(width, height int) *Figure {
	f.width = width
	f.height = height
	return f
}

// Font changes the font used by the terminal
func (f *Figure) Font(font string) *Figure {
	f.font = &font
	return f
}

// FontSize changes the font size used by the terminal
func (f *Figure) FontSize(size float64) *Figure {
	f.fontSize = &size
	return f
}

// BoxWidth changes the relative width of boxes, used by candlesticks
//
// Panics if width is not positive
func (f *Figure) BoxWidth(width float64) *Figure {
	if !(width > 0) {
		panic(fmt.Errorf("%w: %v", ErrInvalidBoxWidth, width))
	}
	f.boxWidth = &width
	return f
}

// Output sets the file the renderer writes to
func (f *Figure) Output(path string) *Figure {
	f.output = &path
	return f
}

// ConfigureAxis applies configure to the properties of axis
func (f *Figure) ConfigureAxis(axis Axis, configure func(*AxisProperties)) *Figure {
	properties, ok := f.axes[axis]
	if !ok {
		properties = newAxisProperties()
		f.axes[axis] = properties
	}
	configure(properties)
	return f
}

// ConfigureKey applies configure to the key, creating it on first use
func (f *Figure) ConfigureKey(configure func(*KeyProperties)) *Figure {
	if f.key == nil {
		f.key = DefaultKeyProperties()
	}
	configure(f.key)
	return f
}

// Key returns the key of the figure, nil if it was never configured.
func (f *Figure) Key() *KeyProperties {
	return f.key
}

// ScaleFactor 返回指定坐标轴组合的 X/Y 比例因子
// ScaleFactor resolves the horizontal and vertical scale factors of axes.
// Unconfigured axes have a factor of 1.
func (f *Figure) ScaleFactor(axes Axes) (x float64, y float64) {
	xAxis, yAxis := axes.Split()
	return f.axisScaleFactor(xAxis), f.axisScaleFactor(yAxis)
}

func (f *Figure) axisScaleFactor(axis Axis) float64 {
	if properties, ok := f.axes[axis]; ok {
		return properties.scaleFactor
	}
	return 1
}

// Plot 解析比例因子、构建数据表并把元素追加到绘图列表
// Plot resolves the scale factors of the element's axes, builds its data
// table and appends it to the plot list
func (f *Figure) Plot(element Element) *Figure {
	axes := element.Axes()
	x, y := f.ScaleFactor(axes)
	return f.Add(NewPlot(axes, element.Table(x, y), element))
}

// Add appends an already compiled plot
func (f *Figure) Add(plot Plot) *Figure {
	xAxis, yAxis := plot.Axes().Split()
	f.usedAxes.Add(xAxis.String())
	f.usedAxes.Add(yAxis.String())
	f.plots = append(f.plots, plot)
	return f
}

// Plots returns the plot list in drawing order.
func (f *Figure) Plots() []Plot {
	return f.plots
}

func (f *Figure) terminalScript() string {
	script := fmt.Sprintf("set terminal %s size %d,%d", f.terminal, f.width, f.height)
	switch {
	case f.font != nil && f.fontSize != nil:
		script += " font " + Quote(*f.font+","+FormatFloat(*f.fontSize))
	case f.font != nil:
		script += " font " + Quote(*f.font)
	case f.fontSize != nil:
		script += " font " + Quote(","+FormatFloat(*f.fontSize))
	}
	return script + "\n"
}

// Script 生成完整的 gnuplot 脚本，多次调用结果相同
// Script renders the whole gnuplot script. It has no side effects, so calling
// it twice yields the same text.
func (f *Figure) Script() string {
	var script strings.Builder

	if f.output != nil {
		fmt.Fprintf(&script, "set output %s\n", Quote(*f.output))
	}

	script.WriteString(f.terminalScript())

	if f.title != nil {
		fmt.Fprintf(&script, "set title %s\n", Quote(*f.title))
	}

	if f.boxWidth != nil {
		fmt.Fprintf(&script, "set boxwidth %s\n", FormatFloat(*f.boxWidth))
	}

	if f.key != nil {
		script.WriteString(f.key.Script())
	}

	for _, axis := range allAxis {
		if properties, ok := f.axes[axis]; ok {
			script.WriteString(properties.script(axis))
		}
	}

	// secondary axes have no tics unless asked for
	for name := range f.usedAxes.Iter() {
		switch name {
		case TopX.String():
			if !f.axisHidden(TopX) {
				script.WriteString("set x2tics\n")
			}
		case RightY.String():
			if !f.axisHidden(RightY) {
				script.WriteString("set y2tics\n")
			}
		}
	}

	if len(f.plots) == 0 {
		return script.String()
	}

	statements := make([]string, 0, len(f.plots))
	for i, plot := range f.plots {
		name := fmt.Sprintf("data%d", i)
		script.WriteString(plot.Data().Datablock(name))
		statements = append(statements, fmt.Sprintf("$%s using %s %s", name, plot.Data().Using(), plot.Script()))
	}

	script.WriteString("plot ")
	script.WriteString(strings.Join(statements, ", "))
	script.WriteByte('\n')

	return script.String()
}

func (f *Figure) axisHidden(axis Axis) bool {
	properties, ok := f.axes[axis]
	return ok && properties.Hidden()
}

// Save 将脚本写入文件
// Save writes the script to path
func (f *Figure) Save(path string) error {
	if err := os.WriteFile(path, []byte(f.Script()), 0644); err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	return nil
}
