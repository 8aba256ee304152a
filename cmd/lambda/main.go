package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/smallie-ng/smallie-web/internal/app"
	"github.com/smallie-ng/smallie-web/internal/logging"
)

func main() {
	logger := logging.FromEnv()
	defer func() { _ = logger.Sync() }()

	lambda.Start(app.NewAdapter(logger).HandleEvent)
}
