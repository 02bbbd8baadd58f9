package controller

import (
	"log/slog"
	"os"
)

// handlers
var (
	alertControllerHandler  = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "alertController")})
	surveyControllerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "surveyController")})
)

// loggers
var (
	alertLogger  = slog.New(alertControllerHandler)
	surveyLogger = slog.New(surveyControllerHandler)
)
