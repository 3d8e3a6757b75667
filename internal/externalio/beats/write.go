package beats

import (
	"context"
	"hilog/internal/global"
	"hilog/pkg/protocol"
	"os"
	"time"
)

// Writes one record and associated metadata to the configured beats server
func (mod *OutModule) Write(ctx context.Context, record protocol.Record) (logsSent int, err error) {
	if mod == nil {
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}

	events := []interface{}{recordFields(record)}
	logsSent, err = mod.sink.Send(events)
	return
}

// Maps a record onto ECS style fields
func recordFields(record protocol.Record) (fields map[string]interface{}) {
	fields = map[string]interface{}{
		// Minimum required fields
		"@timestamp": time.Unix(int64(record.TvSec), int64(record.TvNsec)).UTC(),
		"message":    record.Message,

		"agent": map[string]interface{}{
			// Meta fields identifying the inspector itself
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"type":    "filebeat",
			"pid":     os.Getpid(),
		},
		"process": map[string]interface{}{
			"pid": record.Pid,
			"thread": map[string]interface{}{
				"id": record.Tid,
			},
			"uptime": record.MonoSec,
		},
		"log": map[string]interface{}{
			"logger": record.Tag,
			"hilog": map[string]interface{}{
				"type":   record.Type,
				"level":  record.Level,
				"tag":    record.Tag,
				"domain": record.Domain,
			},
		},
	}
	return
}
