// ABOUTME: Host-facing convenience surface emulating the original widget singleton.
// ABOUTME: Init tears down any previous instance; the core itself has no global state.

package coffeesip

import (
	"sync"

	"github.com/mind13/coffeesip/conversation"
	"github.com/mind13/coffeesip/widget"
)

// Re-exported types so simple hosts only import this package.
type (
	Config       = widget.Config
	ConfigUpdate = widget.ConfigUpdate
	Callbacks    = widget.Callbacks
	Presenter    = widget.Presenter
	Controller   = widget.Controller
	Message      = conversation.Message
)

var (
	mu       sync.Mutex
	instance *widget.Controller
)

// Init configures the widget and returns its controller handle. If a widget
// is already initialized, it is destroyed first; at most one instance exists
// through this surface at a time.
func Init(cfg Config, presenter Presenter) (*Controller, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Destroy()
		instance = nil
	}

	ctrl, err := widget.New(cfg, presenter)
	if err != nil {
		return nil, err
	}
	instance = ctrl
	return ctrl, nil
}

// Instance returns the current controller handle, or nil when none is
// initialized.
func Instance() *Controller {
	mu.Lock()
	defer mu.Unlock()
	return instance
}

// Shutdown destroys the current instance, if any. Safe to call repeatedly.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Destroy()
		instance = nil
	}
}
