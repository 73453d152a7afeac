// Package style holds the application stylesheet.
package style

import (
	_ "embed"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/go-logr/logr"
)

//go:embed style.css
var css string

// Load installs the stylesheet on the default display. Parse errors are
// logged and the rest of the sheet still applies.
func Load(log logr.Logger) {
	provider := gtk.NewCSSProvider()
	provider.ConnectParsingError(func(section *gtk.CSSSection, err error) {
		log.Error(err, "stylesheet", "location", section.String())
	})
	provider.LoadFromData(css)
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}
