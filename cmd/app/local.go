//go:build local
// +build local

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/japb1998/alert-tower/internal/api"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc"
)

func initProvider() (shutdown func(context.Context) error, err error) {
	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("alert-tower"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	target := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(target), otlptracegrpc.WithInsecure(), otlptracegrpc.WithDialOption(grpc.WithBlock()))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tracerProvider.Shutdown, nil
}

func initApp() {
	fmt.Println("init local environment")
	ctx := context.Background()
	shutdownFunc, err := initProvider()
	if err != nil {
		log.Fatal(err)
	}
	defer shutdownFunc(ctx)
	r := api.InitRoutes()

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

func init() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading env vars: %s", err)
	}
}
