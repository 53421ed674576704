// Package logconf builds slog handlers from a small logging configuration
// model, so log settings can live in the same resolved configuration tree as
// everything else.
//
//	var cfg struct {
//	    Log logconf.Config `config:"log"`
//	}
//	// ... resolve and bind ...
//	if err := cfg.Log.Apply(); err != nil {
//	    log.Fatal(err)
//	}
//
// Text output uses lmittmann/tint for readable, colorized console logs; JSON
// output uses the stock slog JSON handler.
package logconf
