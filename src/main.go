//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"context"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/theory/dbtime/internal/playground"
)

func convert(_ js.Value, args []js.Value) any {
	input := args[0].String()
	kind := args[1].String()
	opts := args[2].Int()

	log := zerolog.New(zerolog.ConsoleWriter{Out: consoleWriter{}, NoColor: true}).
		Level(zerolog.WarnLevel)
	return playground.Execute(log.WithContext(context.Background()), input, kind, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("optToStandard", js.ValueOf(playground.OptToStandard))
	js.Global().Set("optLocalTZ", js.ValueOf(playground.OptLocalTZ))
	js.Global().Set("optIndent", js.ValueOf(playground.OptIndent))

	<-stream
}

// consoleWriter writes log lines to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}
