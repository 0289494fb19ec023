package plot

import (
	"fmt"
	"strings"
)

// KeyProperties 图例的配置
// KeyProperties holds the configuration of the key (legend).
//
// Modified through Figure.ConfigureKey.
type KeyProperties struct {
	boxed         bool
	hidden        bool
	justification *Justification
	order         *Order
	position      *Position
	stacked       *Stacked
	title         *string
}

// DefaultKeyProperties returns a shown, unboxed key with every optional
// setting unset.
func DefaultKeyProperties() *KeyProperties {
	return &KeyProperties{}
}

// Hide hides the key
func (k *KeyProperties) Hide() *KeyProperties {
	k.hidden = true
	return k
}

// Show shows the key
//
// The key is shown by default
func (k *KeyProperties) Show() *KeyProperties {
	k.hidden = false
	return k
}

// Boxed sets whether the key is surrounded by a box
//
// The key is not boxed by default
func (k *KeyProperties) Boxed(boxed bool) *KeyProperties {
	k.boxed = boxed
	return k
}

// Justification changes the justification of the text of each entry
//
// gnuplot right-justifies the text when unset
func (k *KeyProperties) Justification(justification Justification) *KeyProperties {
	k.justification = &justification
	return k
}

// Order changes how each entry is ordered
//
// gnuplot uses TextSample when unset
func (k *KeyProperties) Order(order Order) *KeyProperties {
	k.order = &order
	return k
}

// Position selects where the key is placed
//
// gnuplot uses Inside(VerticalTop, HorizontalRight) when unset
func (k *KeyProperties) Position(position Position) *KeyProperties {
	k.position = &position
	return k
}

// Stacked changes how the entries of the key are stacked
func (k *KeyProperties) Stacked(stacked Stacked) *KeyProperties {
	k.stacked = &stacked
	return k
}

// Title sets the title of the key
func (k *KeyProperties) Title(title string) *KeyProperties {
	k.title = &title
	return k
}

// Script 生成 set key 语句；隐藏时只输出 "set key off"
// Script renders the `set key` statement. A hidden key renders as
// "set key off\n" whatever else was set.
func (k *KeyProperties) Script() string {
	if k.hidden {
		return "set key off\n"
	}

	var script strings.Builder
	script.WriteString("set key on ")

	if k.position != nil {
		script.WriteString(k.position.String())
		script.WriteByte(' ')
	}

	if k.stacked != nil {
		script.WriteString(k.stacked.String())
		script.WriteByte(' ')
	}

	if k.justification != nil {
		script.WriteString(k.justification.String())
		script.WriteByte(' ')
	}

	if k.order != nil {
		script.WriteString(k.order.String())
		script.WriteByte(' ')
	}

	if k.title != nil {
		script.WriteString("title ")
		script.WriteString(Quote(*k.title))
		script.WriteByte(' ')
	}

	if k.boxed {
		script.WriteString("box ")
	}

	script.WriteByte('\n')
	return script.String()
}

// Horizontal 图例的水平位置
// Horizontal position of the key
type Horizontal int

const (
	HorizontalCenter Horizontal = iota
	HorizontalLeft
	HorizontalRight
)

func (h Horizontal) String() string {
	switch h {
	case HorizontalLeft:
		return "left"
	case HorizontalRight:
		return "right"
	default:
		return "center"
	}
}

// Vertical 图例的垂直位置
// Vertical position of the key
type Vertical int

const (
	VerticalBottom Vertical = iota
	VerticalCenter
	VerticalTop
)

func (v Vertical) String() string {
	switch v {
	case VerticalBottom:
		return "bottom"
	case VerticalTop:
		return "top"
	default:
		return "center"
	}
}

// Justification of the text of the key entries
type Justification int

const (
	LeftJustified Justification = iota
	RightJustified
)

func (j Justification) String() string {
	if j == LeftJustified {
		return "Left"
	}
	return "Right"
}

// Order of the elements of each key entry
type Order int

const (
	// SampleText draws the sample first, then the text
	SampleText Order = iota
	// TextSample draws the text first, then the sample
	TextSample
)

func (o Order) String() string {
	if o == SampleText {
		return "reverse"
	}
	return "noreverse"
}

// Stacked 图例条目的排列方式
// Stacked tells how the entries of the key are stacked
type Stacked int

const (
	Horizontally Stacked = iota
	Vertically
)

func (s Stacked) String() string {
	if s == Horizontally {
		return "horizontal"
	}
	return "vertical"
}

// Position of the key
type Position struct {
	outside    bool
	vertical   Vertical
	horizontal Horizontal
}

// Inside places the key inside the area surrounded by the four axes
func Inside(vertical Vertical, horizontal Horizontal) Position {
	return Position{vertical: vertical, horizontal: horizontal}
}

// Outside places the key outside the area surrounded by the four axes
func Outside(vertical Vertical, horizontal Horizontal) Position {
	return Position{outside: true, vertical: vertical, horizontal: horizontal}
}

func (p Position) String() string {
	placement := "inside"
	if p.outside {
		placement = "outside"
	}
	return placement + " " + p.vertical.String() + " " + p.horizontal.String()
}

// ParsePosition 解析 "inside top right" 或 "outside bottom center" 格式的图例位置
// ParsePosition parses "<inside|outside> <vertical> <horizontal>"
func ParsePosition(value string) (Position, error) {
	fields := strings.Fields(strings.ToLower(value))
	if len(fields) != 3 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, value)
	}

	var position Position
	switch fields[0] {
	case "inside":
	case "outside":
		position.outside = true
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, value)
	}

	switch fields[1] {
	case "top":
		position.vertical = VerticalTop
	case "center":
		position.vertical = VerticalCenter
	case "bottom":
		position.vertical = VerticalBottom
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, value)
	}

	switch fields[2] {
	case "left":
		position.horizontal = HorizontalLeft
	case "center":
		position.horizontal = HorizontalCenter
	case "right":
		position.horizontal = HorizontalRight
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, value)
	}

	return position, nil
}
