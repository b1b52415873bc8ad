// Package notify fans the storefront's status messages out to pluggable
// sinks.
//
// Every mutation emits one short human-readable message ("Product deleted
// successfully", "Cart is empty", …) meant for transient display. The core
// never renders; it hands the message to whatever sinks the host registered:
//
//	n := notify.New(notify.LogSink{})
//	n.Register(notify.Func(func(msg string) { fmt.Println("::", msg) }))
//	n.Notify("Item removed from cart")
package notify

import (
	"time"

	"github.com/shashiranjanraj/dukaan/pkg/http"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
)

// Sink receives one displayed message per operation outcome.
type Sink interface {
	Notify(msg string)
}

// Func adapts a plain function to the Sink interface.
type Func func(msg string)

func (f Func) Notify(msg string) { f(msg) }

// ------------------- Notifier -------------------

// Notifier dispatches each message to every registered sink, in order.
type Notifier struct {
	sinks []Sink
}

// New creates a Notifier with the given initial sinks.
func New(sinks ...Sink) *Notifier {
	return &Notifier{sinks: sinks}
}

// Register appends a sink.
func (n *Notifier) Register(s Sink) {
	n.sinks = append(n.sinks, s)
}

// Notify sends msg to all sinks. Nil notifiers are safe: operations never
// need to guard their emit calls.
func (n *Notifier) Notify(msg string) {
	if n == nil {
		return
	}
	for _, s := range n.sinks {
		s.Notify(msg)
	}
}

// ------------------- Log sink -------------------

// LogSink writes each message to the structured logger.
type LogSink struct{}

func (LogSink) Notify(msg string) {
	logger.Info("notification", "message", msg)
}

// ------------------- Webhook sink -------------------

// WebhookSink POSTs {"message": ...} to a configured URL. Delivery is
// fire-and-forget: the storefront's single-writer flow must never block on
// an external receiver.
type WebhookSink struct {
	URL string
}

type webhookPayload struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (w WebhookSink) Notify(msg string) {
	if w.URL == "" {
		return
	}
	go func() {
		resp, err := http.Post(w.URL).
			Body(webhookPayload{Message: msg, Time: time.Now()}).
			Timeout(5 * time.Second).
			Send()
		if err != nil {
			logger.Warn("notify: webhook post failed", "error", err)
			return
		}
		if !resp.OK() {
			logger.Warn("notify: webhook returned non-2xx", "status", resp.StatusCode)
		}
	}()
}
