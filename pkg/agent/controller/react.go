// Package controller implements the iteration strategies that drive one
// chain stage: the ReAct investigation loop, the plain tool loop, the
// tool-only data collection variants, and final-analysis synthesis.
package controller

import (
	"context"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/agent/prompt"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// ReActController runs the full Reason + Act loop with text-based tool
// calling. This is the default investigation strategy.
type ReActController struct{}

// NewReActController creates the controller.
func NewReActController() *ReActController { return &ReActController{} }

// Run implements agent.IterationController.
func (c *ReActController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (*models.StageResult, error) {
	return analysisLoop(ctx, execCtx, prompt.ReActFormatInstructions)
}

// RegularController runs the tool loop without the ReAct thought scaffold:
// the model may call tools to gather live data and concludes with its
// analysis. Used for alert types where explicit step-by-step reasoning adds
// nothing.
type RegularController struct{}

// NewRegularController creates the controller.
func NewRegularController() *RegularController { return &RegularController{} }

// Run implements agent.IterationController.
func (c *RegularController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (*models.StageResult, error) {
	return analysisLoop(ctx, execCtx, prompt.RegularFormatInstructions)
}
