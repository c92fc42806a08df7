package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/gritboard/internal/config"
	"github.com/saulo-duarte/gritboard/internal/container"
	"github.com/saulo-duarte/gritboard/internal/router"
)

func main() {
	config.Init(os.Getenv("LOG_LEVEL"))

	c, err := container.New(context.Background())
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to initialize")
	}

	handler := router.New(router.RouterConfig{
		AnalyticsHandler:  c.AnalyticsContainer.Handler,
		CorsAllowedOrigin: c.Settings.CorsAllowedOrigin,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	serve(handler, c.Settings.Port)
}

func serve(handler http.Handler, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		config.Log.WithField("port", port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Log.WithError(err).Error("Graceful shutdown failed")
	}
}
