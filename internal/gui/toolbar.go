// internal/gui/toolbar.go
// Tool selection row: one radio option per drawing tool and a Clear button
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"camera-sketch/internal/drawing"
)

type Toolbar struct {
	logger logrus.FieldLogger

	container *fyne.Container
	tools     *widget.RadioGroup
	clearBtn  *widget.Button

	// Callbacks
	onToolChanged func(drawing.Kind)
	onClear       func()
}

func NewToolbar(initial drawing.Kind, logger logrus.FieldLogger) *Toolbar {
	tb := &Toolbar{logger: logger}
	tb.initializeUI(initial)
	return tb
}

func (tb *Toolbar) initializeUI(initial drawing.Kind) {
	kinds := drawing.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	tb.tools = widget.NewRadioGroup(names, tb.selectTool)
	tb.tools.Horizontal = true
	tb.tools.Required = true
	tb.tools.SetSelected(initial.String())

	tb.clearBtn = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		if tb.onClear != nil {
			tb.onClear()
		}
	})

	tb.container = container.NewHBox(
		widget.NewLabelWithStyle("Tool:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		tb.tools,
		widget.NewSeparator(),
		tb.clearBtn,
	)
}

func (tb *Toolbar) selectTool(name string) {
	kind, err := drawing.ParseKind(name)
	if err != nil {
		tb.logger.WithError(err).Warn("GUI: Ignoring tool selection")
		return
	}
	tb.logger.WithField("tool", kind).Debug("GUI: Tool selected")
	if tb.onToolChanged != nil {
		tb.onToolChanged(kind)
	}
}

func (tb *Toolbar) SetCallbacks(onToolChanged func(drawing.Kind), onClear func()) {
	tb.onToolChanged = onToolChanged
	tb.onClear = onClear
}

func (tb *Toolbar) GetContainer() fyne.CanvasObject {
	return tb.container
}
