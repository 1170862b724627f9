package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/hyperdisk/cmd"
	"github.com/philipparndt/hyperdisk/internal/config"
	"github.com/philipparndt/hyperdisk/internal/editor"
	"github.com/philipparndt/hyperdisk/pkg/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "hyperdisk-gui",
	Short: "Poincaré disk editor with a native toolbar",
	Args:  cobra.NoArgs,
	Run:   run,
}

type App struct {
	window  fyne.Window
	logger  *zap.Logger
	session *editor.Session
	disk    *viewer.DiskWidget
	stats   *widget.Label
}

// refreshingHandler updates the side panel after each gesture
type refreshingHandler struct {
	viewer.PointerHandler
	after func()
}

func (h refreshingHandler) PointerUp() {
	h.PointerHandler.PointerUp()
	h.after()
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) {
	cfg, err := cmd.LoadConfig(configPath, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger, level, err := cmd.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	a := app.New()
	w := a.NewWindow("hyperdisk")

	appInstance := &App{
		window:  w,
		logger:  logger,
		session: editor.New(cfg, logger),
		stats:   widget.NewLabel(""),
	}
	appInstance.buildUI()

	reloader, err := config.Watch(configPath, logger.Named("config"))
	if err != nil {
		logger.Warn("config hot reload unavailable", zap.Error(err))
	} else {
		defer reloader.Close()
		go appInstance.followConfig(reloader, level)
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) buildUI() {
	a.disk = viewer.NewDiskWidget(a.session.View(), a.session.Scene)
	a.disk.SetPointerHandler(refreshingHandler{
		PointerHandler: a.session.Manager(),
		after:          a.updateStats,
	})

	names := make([]string, 0, len(a.session.Tools()))
	for _, t := range a.session.Tools() {
		names = append(names, t.Name())
	}
	toolGroup := widget.NewRadioGroup(names, func(name string) {
		if name == "" {
			return
		}
		if err := a.session.SelectTool(name); err != nil {
			a.logger.Warn("cannot select tool", zap.Error(err))
		}
		a.disk.Refresh()
	})
	toolGroup.Required = true
	toolGroup.SetSelected(a.session.ToolName())

	clearButton := widget.NewButton("Clear", func() {
		a.session.Clear()
		a.updateStats()
		a.disk.Refresh()
	})
	resetButton := widget.NewButton("Reset View", func() {
		a.session.View().Reset()
		a.disk.Refresh()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Left drag: use the selected tool\n" +
			"• Drag with another button to pan\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Tools:"),
		widget.NewSeparator(),
		toolGroup,
		widget.NewSeparator(),
		widget.NewLabel("Diagram:"),
		a.stats,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		clearButton,
		resetButton,
	)
	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(220, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.disk,      // center
	)
	a.window.SetContent(content)
	a.updateStats()
}

func (a *App) updateStats() {
	graph := a.session.Graph()
	a.stats.SetText(fmt.Sprintf("Points: %d\nLines: %d\nMirrors: %d",
		len(graph.Points()), len(graph.Lines()), len(graph.Mirrors())))
}

// followConfig applies reloaded configs on the UI goroutine
func (a *App) followConfig(reloader *config.Reloader, level zap.AtomicLevel) {
	for cfg := range reloader.Updates() {
		fyne.Do(func() {
			a.session.ApplyConfig(cfg)
			if l, err := cfg.Level(); err == nil {
				level.SetLevel(l)
			}
			a.disk.Refresh()
		})
	}
}
