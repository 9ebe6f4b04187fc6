// internal/gui/filter_panel.go
// Filter toggles and color space selection
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"camera-sketch/internal/core"
)

// FilterPanel shows one check per registered filter, in pipeline order, and
// a color space radio
type FilterPanel struct {
	pipeline *core.Pipeline
	logger   logrus.FieldLogger

	container  *fyne.Container
	checks     map[string]*widget.Check
	colorSpace *widget.RadioGroup
}

func NewFilterPanel(pipeline *core.Pipeline, logger logrus.FieldLogger) *FilterPanel {
	fp := &FilterPanel{
		pipeline: pipeline,
		logger:   logger,
		checks:   make(map[string]*widget.Check),
	}
	fp.initializeUI()
	return fp
}

func (fp *FilterPanel) initializeUI() {
	filters := container.NewVBox()
	for _, f := range fp.pipeline.Filters().Filters() {
		name := f.Name()
		check := widget.NewCheck(name, func(on bool) {
			fp.setFilter(name, on)
		})
		check.SetChecked(f.Enabled())
		fp.checks[name] = check
		filters.Add(check)
	}

	spaces := core.ColorSpaces()
	names := make([]string, len(spaces))
	for i, cs := range spaces {
		names[i] = cs.String()
	}
	fp.colorSpace = widget.NewRadioGroup(names, fp.selectColorSpace)
	fp.colorSpace.Required = true
	fp.colorSpace.SetSelected(fp.pipeline.ColorSpace().String())

	fp.container = container.NewVBox(
		widget.NewCard("Filters", "", filters),
		widget.NewCard("Color Space", "", fp.colorSpace),
	)
}

// setFilter toggles the named filter when the check disagrees with it
func (fp *FilterPanel) setFilter(name string, on bool) {
	f, ok := fp.pipeline.Filters().Get(name)
	if !ok || f.Enabled() == on {
		return
	}
	if err := fp.pipeline.Filters().Toggle(name); err != nil {
		fp.logger.WithError(err).Error("GUI: Filter toggle failed")
		return
	}
	fp.logger.WithFields(logrus.Fields{
		"filter":  name,
		"enabled": on,
	}).Info("GUI: Filter toggled")
}

func (fp *FilterPanel) selectColorSpace(name string) {
	cs, err := core.ParseColorSpace(name)
	if err != nil {
		fp.logger.WithError(err).Warn("GUI: Ignoring color space selection")
		return
	}
	fp.pipeline.SetColorSpace(cs)
}

func (fp *FilterPanel) GetContainer() fyne.CanvasObject {
	return fp.container
}
