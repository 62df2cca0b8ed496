package common

import (
	"context"
	"fmt"

	"github.com/DANNY1169/resume-role-classifier/internal/errors"
)

// CreateInputFunc builds the operation input from resume file contents.
type CreateInputFunc[Input any] func(contents []string) (Input, error)

// LogDetailsFunc logs the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// OperationFunc is the signature shared by pipeline operations.
type OperationFunc[Input, Output any] func(context.Context, Input) (Output, error)

// RunFileCommand is the shared skeleton of the file-based CLI
// commands: validate and read the resume files, build the operation
// input, run the operation, then format and deliver the result.
func RunFileCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	createInput CreateInputFunc[Input],
	operation OperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	contents, err := NewFileProcessor(logger).ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	input, err := createInput(contents)
	if err != nil {
		return fmt.Errorf("failed to create input from file contents: %w", err)
	}

	logDetails(input, cmdConfig)

	result, err := operation(ctx, input)
	if err != nil {
		return err
	}

	return NewOutputHandler(logger).HandleOutput(result, cmdConfig)
}
