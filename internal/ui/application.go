package ui

import (
	"context"
	"os"
	"runtime"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/todoelm/internal/host"
	r "github.com/getseabird/todoelm/internal/reactive"
	"github.com/getseabird/todoelm/internal/state"
	"github.com/getseabird/todoelm/internal/style"
	"github.com/go-logr/logr"
)

const ApplicationName = "Todo"

type Application struct {
	*adw.Application
	config *state.Config
	log    logr.Logger
}

func NewApplication(config *state.Config, log logr.Logger) *Application {
	gtk.Init()

	switch runtime.GOOS {
	case "windows":
		os.Setenv("GTK_CSD", "0")
	case "darwin":
		gtk.SettingsGetDefault().SetObjectProperty("gtk-decoration-layout", "close,minimize,maximize")
	}

	style.Load(log.WithName("style"))

	a := Application{
		Application: adw.NewApplication("dev.skynomads.Todoelm", gio.ApplicationFlagsNone),
		config:      config,
		log:         log,
	}
	a.ConnectActivate(func() {
		a.newWindow(context.Background()).Present()
	})
	return &a
}

func (a *Application) newWindow(ctx context.Context) *adw.ApplicationWindow {
	adw.StyleManagerGetDefault().SetColorScheme(colorScheme(a.config.ColorScheme))

	window := adw.NewApplicationWindow(&a.Application.Application)
	window.SetTitle(ApplicationName)
	window.SetDefaultSize(a.config.Window.Width, a.config.Window.Height)
	window.ConnectCloseRequest(func() bool {
		width, height := window.DefaultSize()
		if err := a.config.SaveWindowSize(width, height); err != nil {
			a.log.Error(err, "saving window size", "path", a.config.Path())
		}
		return false
	})

	retainer := r.NewRetainer(viewLocal...)
	for _, e := range retainer.Exemptions() {
		a.log.V(1).Info("view-local state", "name", e.Name, "reason", e.Reason)
	}

	var loop *host.Loop[DemoMsg, DemoModel, r.Model]
	sink := r.NewWindowSink(ctx, window, retainer, func(msg any) {
		loop.Dispatch(msg.(DemoMsg))
	})
	loop = host.New[DemoMsg, DemoModel, r.Model](
		Demo(a.config),
		sink,
		host.WithLogger(a.log),
		host.WithTrace(a.config.Trace),
	)
	loop.Start()

	return window
}

// Run runs the application until its last window is closed and returns the
// exit code.
func (a *Application) Run(args []string) int {
	return a.Application.Run(args)
}

func colorScheme(name string) adw.ColorScheme {
	switch name {
	case "light":
		return adw.ColorSchemeForceLight
	case "dark":
		return adw.ColorSchemeForceDark
	default:
		return adw.ColorSchemeDefault
	}
}
