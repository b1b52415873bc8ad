package main

import (
	"fmt"

	"github.com/shashiranjanraj/dukaan/app/session"
	"github.com/shashiranjanraj/dukaan/app/shop"
	"github.com/shashiranjanraj/dukaan/app/store"
	"github.com/shashiranjanraj/dukaan/config"
	"github.com/shashiranjanraj/dukaan/pkg/blob"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
	"github.com/shashiranjanraj/dukaan/pkg/notify"
)

// boot loads config, connects the blob manager, and wires the shop over
// the configured default driver. The session always lives on the memory
// driver so it dies with the process.
func boot() (*shop.Shop, *store.Store, error) {
	if err := config.Load(); err != nil {
		return nil, nil, err
	}
	if err := blob.Connect(); err != nil {
		return nil, nil, err
	}
	if _, err := logger.EnableMongo(); err != nil {
		logger.Warn("boot: mongo log sink unavailable", "error", err)
	}

	notifier := notify.New(snackbarSink{})
	if url := config.NotifyWebhookURL(); url != "" {
		notifier.Register(notify.WebhookSink{URL: url})
	}

	st := store.New(blob.Default())
	return shop.New(st, session.New(blob.Use("memory")), notifier), st, nil
}

// snackbarSink prints notifications to stdout, standing in for the
// transient snackbar a UI would show.
type snackbarSink struct{}

func (snackbarSink) Notify(msg string) {
	fmt.Println("»", msg)
}
