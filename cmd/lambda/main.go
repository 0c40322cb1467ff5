//go:build lambda

// Command lambda serves the contact relay router from AWS Lambda behind an
// API Gateway HTTP API or a function URL (payload format 2.0).
package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/shandysiswandi/contactrelay/internal/app"
)

var (
	application *app.App
	httpLambda  *httpadapter.HandlerAdapterV2
)

func init() {
	application = app.New()
	httpLambda = httpadapter.NewV2(application.Handler())
}

// Handler proxies one API Gateway v2 event through the HTTP router.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	// the sandbox is frozen between invocations
	defer application.Flush(ctx)

	resp, err := httpLambda.ProxyWithContext(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to proxy lambda request", "route_key", req.RouteKey, "error", err)
	}
	return resp, err
}

func main() {
	lambda.Start(Handler)
}
