package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// SetupLogging points the standard logger at the debug log file, or
// discards all output when debug is off. The returned file is nil when
// logging is disabled.
func SetupLogging(c Config) (*os.File, error) {
	if !c.Debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("config: open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("logging started, seed=%d", c.Seed)
	return f, nil
}
