//go:build js && wasm

// Binary recount-wasm runs the channel approach against the real browser
// DOM. Build with GOOS=js GOARCH=wasm and load the resulting module via
// wasm_exec.js; the counter mounts onto document.body.
package main

import (
	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/dom"
	"github.com/Iron-Ham/recount/internal/logging"
)

func main() {
	cfg := config.Default()

	// Stderr reaches the browser console under the wasm_exec.js shim
	log, err := logging.NewLogger("", cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	browser := dom.NewBrowser()
	if _, err := demo.Build(demo.ApproachChannel, browser,
		demo.WithLogger(log),
		demo.WithCapacity(cfg.Channel.Capacity),
		demo.WithLogDrops(cfg.Channel.LogDrops),
	); err != nil {
		panic(err)
	}

	// The page owns the lifetime: block forever so the click handlers
	// and the reducer loop stay alive.
	select {}
}
