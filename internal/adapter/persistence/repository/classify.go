package repository

import (
	"errors"

	"projeto_solar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const conditionalCheckFailed = "ConditionalCheckFailed"

var errMissingCounter = errors.New("counter attribute missing from update response")

// classify converts a raw DynamoDB error into the storage taxonomy exactly
// once, here at the gateway boundary. A conditional-check failure on a
// single-item write is a uniqueness conflict on field; everything else is
// an opaque persistence failure carrying the internal cause for logging.
func classify(op, field string, err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) && field != "" {
		return &interfaces.ConflictError{Field: field}
	}
	return &interfaces.PersistenceError{Op: op, Err: err}
}

// classifyTransact maps a cancelled transaction back to the item whose
// condition failed. fields holds one conflict-field name per transact item,
// empty for items whose conditions cannot signal a caller-fixable conflict.
func classifyTransact(op string, fields []string, err error) error {
	if err == nil {
		return nil
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) != conditionalCheckFailed {
				continue
			}
			if i < len(fields) && fields[i] != "" {
				return &interfaces.ConflictError{Field: fields[i]}
			}
		}
	}
	return &interfaces.PersistenceError{Op: op, Err: err}
}
