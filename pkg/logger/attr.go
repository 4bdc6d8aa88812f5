package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error".
// If err is nil, it returns an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Database(name string) slog.Attr {
	return slog.String("database", name)
}

func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Operation records the model operation (find, insert, ...) under "operation".
func Operation(op string) slog.Attr {
	return slog.String("operation", op)
}

// DocumentID records a document identifier under "document_id".
// If id is nil, it returns an empty Attr.
func DocumentID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("document_id", id)
}

func Count(n int64) slog.Attr {
	return slog.Int64("count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
