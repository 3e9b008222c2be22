package repository

import (
	"errors"
	"testing"

	"projeto_solar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestClassify(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if err := classify("op", "id", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conditional check failure becomes a conflict", func(t *testing.T) {
		err := classify("equipment.create", "id", &types.ConditionalCheckFailedException{})
		if !interfaces.IsConflict(err, "id") {
			t.Fatalf("expected conflict on id, got %v", err)
		}
	})

	t.Run("conditional check failure without field is opaque", func(t *testing.T) {
		err := classify("equipment.get", "", &types.ConditionalCheckFailedException{})
		var perr *interfaces.PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected persistence error, got %v", err)
		}
	})

	t.Run("unknown faults stay persistence errors", func(t *testing.T) {
		cause := errors.New("throttled")
		err := classify("projects.get", "id", cause)
		var perr *interfaces.PersistenceError
		if !errors.As(err, &perr) || !errors.Is(err, cause) {
			t.Fatalf("expected wrapped persistence error, got %v", err)
		}
	})
}

func TestClassifyTransact(t *testing.T) {
	fields := []string{"", "num_projeto", ""}

	t.Run("nil passes through", func(t *testing.T) {
		if err := classifyTransact("projects.create", fields, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("guard cancellation maps to its field", func(t *testing.T) {
		tce := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		}
		err := classifyTransact("projects.create", fields, tce)
		if !interfaces.IsConflict(err, "num_projeto") {
			t.Fatalf("expected conflict on num_projeto, got %v", err)
		}
	})

	t.Run("cancellation on an unconditioned item is opaque", func(t *testing.T) {
		tce := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		}
		err := classifyTransact("projects.create", fields, tce)
		var perr *interfaces.PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected persistence error, got %v", err)
		}
	})

	t.Run("non transaction faults stay persistence errors", func(t *testing.T) {
		err := classifyTransact("projects.create", fields, errors.New("throttled"))
		var perr *interfaces.PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected persistence error, got %v", err)
		}
	})
}
