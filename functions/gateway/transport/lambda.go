package transport

import (
	"github.com/aws/aws-lambda-go/events"
)

// aliasing the types to keep lines short
type Request = events.APIGatewayProxyRequest
type Response = events.APIGatewayProxyResponse
