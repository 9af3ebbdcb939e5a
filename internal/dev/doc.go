// Package dev provides live reload for the static server.
//
// A Watcher observes the served directory through fsnotify and reports
// debounced batches of changes. A ReloadServer holds the browsers connected
// over WebSocket and tells them to reload the page, or only the stylesheets
// when nothing but CSS changed.
//
//	reload := dev.NewReloadServer(logger)
//	watcher := dev.NewWatcher(dev.WatcherConfig{Paths: []string{root}})
//	watcher.OnChange(reload.NotifyChanges)
//	go watcher.Start(ctx)
//
// Pages opt in by including ClientScript, which the server injects into the
// entry page when live reload is enabled.
package dev
