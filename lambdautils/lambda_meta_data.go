package lambdautils

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

// LambdaMetaData stored details about the current invocation.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	MemoryLimitInMB int
	RequestID       string
	Context         *lambdacontext.LambdaContext
}

// GetLambdaMetaData returns MetaData extracted from the current lambda
// context. Outside of lambda (local runs, tests) RequestID is a fresh uuid so
// log lines of one request can still be grouped.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	lm.Context, _ = lambdacontext.FromContext(ctx)
	if lm.Context != nil && lm.Context.AwsRequestID != "" {
		lm.RequestID = lm.Context.AwsRequestID
	} else {
		lm.RequestID = uuid.NewString()
	}

	return lm
}

// Fields returns the metadata as alternating key/value pairs for structured
// logging. Empty values are skipped.
func (lm LambdaMetaData) Fields() []interface{} {
	fields := []interface{}{"request_id", lm.RequestID}

	if lm.FunctionName != "" {
		fields = append(fields, "function", lm.FunctionName)
	}

	if lm.FunctionVersion != "" {
		fields = append(fields, "version", lm.FunctionVersion)
	}

	return fields
}
