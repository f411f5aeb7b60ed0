package ui

import (
	"go.uber.org/zap"

	"nazhan-shop/internal/logger"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// View names a UI region whose backing data changed.
type View string

const (
	ViewCart        View = "cart"
	ViewCheckout    View = "checkout"
	ViewAdminOrders View = "adminOrders"
	ViewMyOrders    View = "myOrders"
	ViewAdminAuth   View = "adminAuthVisibility"
)

// Notifier delivers fire-and-forget toasts to the user. The core never
// waits on a notification and never inspects the outcome.
type Notifier interface {
	Notify(message string, severity Severity)
}

// ViewRenderer asks the presentation layer to refresh a named view.
type ViewRenderer interface {
	Render(view View)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Severity) {}

// NopRenderer discards render requests.
type NopRenderer struct{}

func (NopRenderer) Render(View) {}

// LogNotifier writes notifications to the application log. Used by the
// CLI host where there is no toast surface.
type LogNotifier struct{}

func (LogNotifier) Notify(message string, severity Severity) {
	l := logger.L()
	switch severity {
	case SeverityWarning:
		l.Warn(message)
	case SeverityError:
		l.Error(message)
	default:
		l.Info(message, zap.String("severity", string(severity)))
	}
}

// LogRenderer logs render requests at debug level.
type LogRenderer struct{}

func (LogRenderer) Render(view View) {
	logger.L().Debug("render requested", zap.String("view", string(view)))
}
