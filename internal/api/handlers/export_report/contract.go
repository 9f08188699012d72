package export_report

import "context"

type DocumentService interface {
	Report(ctx context.Context, date string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
