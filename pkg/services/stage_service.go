package services

import (
	"context"
	"fmt"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/stageexecution"
)

// StageService manages stage execution rows. A stage row is created when the
// chain executor reaches that stage, never ahead of time: a cancelled session
// must not leave behind rows for stages that never started.
type StageService struct {
	client *ent.Client
	clocks *Clocks
}

// NewStageService creates a StageService.
func NewStageService(client *ent.Client, clocks *Clocks) *StageService {
	return &StageService{client: client, clocks: clocks}
}

// CreateStageInput describes a stage about to run.
type CreateStageInput struct {
	ExecutionID       string
	SessionID         string
	StageID           string
	StageName         string
	Agent             string
	StageIndex        int
	IterationStrategy string
}

// CreateStage persists a pending stage execution.
func (s *StageService) CreateStage(_ context.Context, in CreateStageInput) (*ent.StageExecution, error) {
	if in.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if in.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	stage, err := s.client.StageExecution.Create().
		SetID(in.ExecutionID).
		SetSessionID(in.SessionID).
		SetStageID(in.StageID).
		SetStageName(in.StageName).
		SetAgent(in.Agent).
		SetStageIndex(in.StageIndex).
		SetIterationStrategy(in.IterationStrategy).
		SetStatus(stageexecution.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create stage execution: %w", err)
	}
	return stage, nil
}

// StartStage marks a stage active and stamps its start time.
func (s *StageService) StartStage(_ context.Context, executionID, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	n, err := s.client.StageExecution.Update().
		Where(
			stageexecution.IDEQ(executionID),
			stageexecution.StatusEQ(stageexecution.StatusPending),
		).
		SetStatus(stageexecution.StatusActive).
		SetStartedAtUs(s.clocks.For(sessionID).Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to start stage: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("stage %s: %w", executionID, ErrNotFound)
	}
	return nil
}

// CompleteStage records a successful stage with its structured output.
// Output and error are mutually exclusive by construction: this method never
// writes error_message, FailStage never writes stage_output.
func (s *StageService) CompleteStage(_ context.Context, executionID, sessionID string, output map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.finishStage(ctx, executionID, sessionID, func(upd *ent.StageExecutionUpdate) {
		upd.SetStatus(stageexecution.StatusCompleted).SetStageOutput(output)
	})
}

// FailStage records a failed stage with its error message.
func (s *StageService) FailStage(_ context.Context, executionID, sessionID, errorMessage string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return s.finishStage(ctx, executionID, sessionID, func(upd *ent.StageExecutionUpdate) {
		upd.SetStatus(stageexecution.StatusFailed).SetErrorMessage(errorMessage)
	})
}

func (s *StageService) finishStage(ctx context.Context, executionID, sessionID string, apply func(*ent.StageExecutionUpdate)) error {
	stage, err := s.client.StageExecution.Query().
		Where(stageexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("stage %s: %w", executionID, ErrNotFound)
		}
		return fmt.Errorf("failed to load stage: %w", err)
	}

	completedUs := s.clocks.For(sessionID).Now()
	upd := s.client.StageExecution.Update().
		Where(
			stageexecution.IDEQ(executionID),
			stageexecution.StatusIn(stageexecution.StatusPending, stageexecution.StatusActive),
		).
		SetCompletedAtUs(completedUs)
	if stage.StartedAtUs != nil {
		upd.SetDurationMs((completedUs - *stage.StartedAtUs) / 1000)
	}
	apply(upd)

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish stage: %w", err)
	}
	if n == 0 {
		// Already terminal.
		return nil
	}
	return nil
}

// ListStages returns a session's stages in execution order.
func (s *StageService) ListStages(ctx context.Context, sessionID string) ([]*ent.StageExecution, error) {
	stages, err := s.client.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(stageexecution.FieldStageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	return stages, nil
}
