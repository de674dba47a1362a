//go:build js && wasm

// dollcode-wasm exposes the dollcode conversions to JavaScript.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o dollcode.wasm ./cmd/dollcode-wasm
//
// After the module starts, four functions are registered on the global
// object. Each takes one string and returns {ok: string} on success or
// {error: string} with the adapter.Message of the failure:
//
//	convertDecimal("42")    // {ok: "▖▖▖▌"}
//	convertHex("0x2a")      // {ok: "▖▖▖▌"}
//	convertText("Hi")       // {ok: "▖▖▖▌▘▖▘▖▌▘"}
//	convertDollcode("▖▖▖▌") // {ok: "d:42,h:0x2a"}
package main

import (
	"syscall/js"

	"github.com/arloliu/dollcode/adapter"
)

func main() {
	converter, err := adapter.NewConverter()
	if err != nil {
		panic(err)
	}

	global := js.Global()
	global.Set("convertDecimal", export(converter.ConvertDecimal))
	global.Set("convertHex", export(converter.ConvertHex))
	global.Set("convertText", export(converter.ConvertText))
	global.Set("convertDollcode", export(converter.ConvertSymbols))

	// keep the exported functions alive
	select {}
}

// export wraps a conversion as a JavaScript function of one string argument.
func export(convert func(string) (string, error)) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) != 1 || args[0].Type() != js.TypeString {
			return map[string]any{"error": adapter.MessageInvalidInput}
		}

		out, err := convert(args[0].String())
		if err != nil {
			return map[string]any{"error": adapter.Message(err)}
		}

		return map[string]any{"ok": out}
	})
}
