package main

import (
	"context"
	"fmt"
	"net/http"

	"passport-query-api/internal/config"
	"passport-query-api/internal/handlers"
	"passport-query-api/pkg/lambda"
	"passport-query-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var (
	container *server.Container
	router    *lambda.Router
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	queryHandler := handlers.NewQueryHandler(container.QueryService, container.Logger)

	router = lambda.NewRouter()
	router.Handle(http.MethodPost, "/queries", queryHandler.HandleSubmit)
	router.Handle(http.MethodOptions, "/queries", queryHandler.HandlePreflight)
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (response events.APIGatewayProxyResponse, err error) {
	// Outermost boundary: a panic must still produce the canonical 500 body
	// with the standard headers, never a platform error page.
	defer func() {
		if recovered := recover(); recovered != nil {
			container.Logger.WithField("panic", fmt.Sprintf("%v", recovered)).Error("Unexpected error")
			response = events.APIGatewayProxyResponse{
				StatusCode: http.StatusInternalServerError,
				Headers:    lambda.StandardHeaders(),
				Body:       `{"message":"Internal Server Error"}`,
			}
			err = nil
		}
	}()

	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}

	resp, err := router.Dispatch(ctx, req)
	if err != nil {
		container.Logger.WithField("error", err.Error()).Error("Unhandled dispatch error")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    lambda.StandardHeaders(),
			Body:       `{"message":"Internal Server Error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
