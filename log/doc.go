// SPDX-License-Identifier: EPL-2.0

// Package log provides the logging abstraction used by the encoder.
//
// The library never writes to a global logger. Components accept a Logger
// and default to NewNoopLogger; the command line tool wraps zerolog:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	signal, err := audboot.Encode(data, cfg, audboot.WithLogger(logger))
//
// Any other logging library can be plugged in by implementing Logger.
package log
