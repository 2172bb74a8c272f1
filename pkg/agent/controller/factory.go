package controller

import (
	"fmt"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/config"
)

// ForStrategy returns the controller implementing the given iteration
// strategy. Satisfies agent.ControllerFactory.
func ForStrategy(strategy config.IterationStrategy) (agent.IterationController, error) {
	switch strategy {
	case config.IterationStrategyRegular:
		return NewRegularController(), nil
	case config.IterationStrategyReact:
		return NewReActController(), nil
	case config.IterationStrategyReactTools:
		return NewReActToolsController(), nil
	case config.IterationStrategyReactToolsPartial:
		return NewReActToolsPartialController(), nil
	case config.IterationStrategyReactFinalAnalysis:
		return NewFinalAnalysisController(), nil
	default:
		return nil, fmt.Errorf("unknown iteration strategy %q", strategy)
	}
}
