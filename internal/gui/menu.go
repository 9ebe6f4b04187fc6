// Menu handler for application actions
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"
)

const aboutText = `Camera Sketch

Draw over a live camera feed.
Left button draws with the selected tool, right button clears.
With the Text tool, click to place the cursor, type, and press Enter.`

// MenuHandler handles menu actions
type MenuHandler struct {
	window fyne.Window
	logger logrus.FieldLogger

	onClear func()
}

func NewMenuHandler(window fyne.Window, logger logrus.FieldLogger) *MenuHandler {
	return &MenuHandler{
		window: window,
		logger: logger,
	}
}

func (mh *MenuHandler) SetCallbacks(onClear func()) {
	mh.onClear = onClear
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	quit := fyne.NewMenuItem("Quit", func() {
		mh.logger.Info("GUI: Quit requested")
		mh.window.Close()
	})
	quit.IsQuit = true
	fileMenu := fyne.NewMenu("File", quit)

	canvasMenu := fyne.NewMenu("Canvas",
		fyne.NewMenuItem("Clear", func() {
			if mh.onClear != nil {
				mh.onClear()
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, canvasMenu, helpMenu)
}

func (mh *MenuHandler) showAbout() {
	dialog.ShowInformation("About", aboutText, mh.window)
}
