// Package log provides the logging abstraction used by ipextractor.
//
// The Runner and Watcher log through the [Logger] interface. The CLI wires a
// zerolog console logger; tests and library callers that want silence use
// [NoopLogger].
//
//	zl, err := log.NewConsole(os.Stderr, "info")
//	if err != nil {
//	    return err
//	}
//	logger := log.NewZerologAdapterWithLogger(zl)
//	logger.Info("extracted", log.String("source", path), log.Int("count", n))
package log
