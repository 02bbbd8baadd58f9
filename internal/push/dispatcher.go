package push

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/japb1998/alert-tower/internal/message"
)

var (
	pushHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Push Dispatcher")})
	pushLogger  = slog.New(pushHandler)
)

// Notification is the envelope shared by the direct route and the fallback
// relay. Tag is a deduplication key: showing a notification whose tag is still
// visible replaces the prior one instead of stacking.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Icon  string            `json:"icon,omitempty"`
	Tag   string            `json:"tag,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notifier is the platform notification surface. Show returns a close
// function for the displayed notification.
type Notifier interface {
	Show(n Notification) (close func(), err error)
}

// Focuser brings the host window to the foreground on activation.
type Focuser interface {
	Focus()
}

// Handle references a displayed notification.
type Handle struct {
	ID    string
	Tag   string
	close func()
	focus Focuser
}

// Activate mirrors a user click: foreground the window, dismiss the
// notification. No business logic runs here.
func (h *Handle) Activate() {
	if h.focus != nil {
		h.focus.Focus()
	}
	if h.close != nil {
		h.close()
	}
}

// Dispatcher delivers local notifications when permission is granted, falling
// back to the worker relay when the direct route fails.
type Dispatcher struct {
	perms    *Manager
	notifier Notifier
	relay    *Relay
	focus    Focuser
}

func NewDispatcher(perms *Manager, notifier Notifier, relay *Relay, focus Focuser) *Dispatcher {
	return &Dispatcher{
		perms:    perms,
		notifier: notifier,
		relay:    relay,
		focus:    focus,
	}
}

// Dispatch shows the notification. A nil handle without delivery happens only
// when permission is not granted; a direct-route failure is rerouted through
// the relay and still counts as delivered for the caller.
func (d *Dispatcher) Dispatch(n Notification) *Handle {
	if d.perms.State() != PermissionGranted {
		return nil
	}

	close, err := d.notifier.Show(n)
	if err != nil {
		pushLogger.Warn("direct notification failed, rerouting through worker relay",
			slog.String("tag", n.Tag), slog.String("error", err.Error()))
		if d.relay != nil {
			d.relay.Post(n)
		}
		return nil
	}

	return &Handle{
		ID:    uuid.NewString(),
		Tag:   n.Tag,
		close: close,
		focus: d.focus,
	}
}

// NotifyLowStock dispatches a low-stock notification for one item. Repeated
// calls for the same item share a tag and replace each other.
func (d *Dispatcher) NotifyLowStock(name string, quantity, reorderLevel int) *Handle {
	name = message.Sanitize(name)
	return d.Dispatch(Notification{
		Title: "Low Stock Alert",
		Body:  fmt.Sprintf("%s: %d left (reorder at %d)", name, quantity, reorderLevel),
		Tag:   "low-stock-" + name,
		Data:  map[string]string{"type": "low_stock", "item": name},
	})
}

// NotifyExpiry dispatches an expiry notification for one item, with the same
// urgency markers the rendered channels use.
func (d *Dispatcher) NotifyExpiry(name string, daysUntilExpiry int) *Handle {
	name = message.Sanitize(name)
	var body string
	if daysUntilExpiry <= 0 {
		body = fmt.Sprintf("[%s] %s has expired", message.ExpiryMarker(daysUntilExpiry), name)
	} else {
		body = fmt.Sprintf("[%s] %s expires in %d days", message.ExpiryMarker(daysUntilExpiry), name, daysUntilExpiry)
	}
	return d.Dispatch(Notification{
		Title: "Expiry Warning",
		Body:  body,
		Tag:   "expiry-" + name,
		Data:  map[string]string{"type": "expiry_warning", "item": name},
	})
}
