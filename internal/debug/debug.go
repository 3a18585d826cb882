// Package debug provides optional file-based debug logging.
//
// When the VIEW_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	out  *os.File
	once sync.Once
)

func open() {
	path := os.Getenv("VIEW_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	out = f
}

// Log appends a formatted message to the debug file, if one is
// configured. It is safe to call from any goroutine.
func Log(format string, args ...any) {
	once.Do(open)
	if out == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s ", time.Now().Format("15:04:05.000"))
	fmt.Fprintf(out, format, args...)
	fmt.Fprintln(out)
}
