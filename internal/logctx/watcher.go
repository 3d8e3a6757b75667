package logctx

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Hold main thread exit until watchers have finished their work
func (logger *Logger) Wait() {
	logger.wg.Wait()
}

// Wake broadcasts to any goroutines waiting on the condition variable
func (logger *Logger) Wake() {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	logger.cond.Broadcast()
}

// Starts a go routine that pops events and writes formatted output to output.
// Remaining events are flushed once logger.Done is closed, then the routine exits.
func StartWatcher(logger *Logger, output io.Writer) {
	logger.wg.Add(1)

	go func() {
		defer logger.wg.Done()

		for {
			logger.mutex.Lock()
			for len(logger.queue) == 0 {
				select {
				case <-logger.Done:
					logger.mutex.Unlock()
					return
				default:
					logger.cond.Wait()
				}
			}

			event := logger.queue[0]
			logger.queue = logger.queue[1:]
			logger.mutex.Unlock()

			// Message creator determines newlines
			fmt.Fprint(output, event.Format())
		}
	}()
}

// Stringify full event, only printing parts that are present
func (event Event) Format() (text string) {
	var parts []string
	if !event.Timestamp.IsZero() {
		parts = append(parts, "["+padTimestamp(event.Timestamp)+"]")
	}
	if len(event.Tags) > 0 {
		parts = append(parts, "["+strings.Join(event.Tags, "/")+"]")
	}
	if event.Severity != "" {
		parts = append(parts, "["+event.Severity+"]")
	}
	if event.Message != "" {
		parts = append(parts, event.Message)
	}

	text = strings.Join(parts, " ")
	return
}

// Fixed width RFC3339 timestamp (nanoseconds always 9 digits)
func padTimestamp(timestamp time.Time) (formatted string) {
	formatted = timestamp.Format("2006-01-02T15:04:05.000000000Z07:00")
	return
}
