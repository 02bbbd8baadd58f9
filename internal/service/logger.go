package service

import (
	"os"

	"log/slog"
)

// Alert Logger
var (
	alertHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Alert Service")})
	alertLogger  = slog.New(alertHandler)
)

// Survey Logger
var (
	surveyHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Survey Service")})
	surveyLogger  = slog.New(surveyHandler)
)
