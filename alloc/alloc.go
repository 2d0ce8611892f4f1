package alloc

import (
	"github.com/gridtied/gridtied/config"
	"github.com/gridtied/gridtied/dpgrid"
	"github.com/gridtied/gridtied/log"
	"github.com/gridtied/gridtied/policy"
	"github.com/gridtied/gridtied/refine"
	"github.com/gridtied/gridtied/smallload"
)

// GridTiedAllocation is the orchestrator entry point: one configured
// instance serves repeated Process calls against a fixed RunConfig.
type GridTiedAllocation struct {
	Config    *config.RunConfig
	Minimizer refine.Minimizer
	Logger    log.Logger
}

// New builds a GridTiedAllocation for cfg with Minimizer set to
// refine.ProjectedGradient and Logger set to logger, or to a no-op
// logger when logger is nil.
func New(cfg *config.RunConfig, logger log.Logger) *GridTiedAllocation {
	return &GridTiedAllocation{
		Config:    cfg,
		Minimizer: refine.ProjectedGradient{},
		Logger:    log.Or(logger),
	}
}

// Process runs the full pipeline against currentState (indexed by
// each enabled item's Index) and referenceCommand. It reports
// ok=false only when the configuration fails validation or
// every solving path — small-load, DP, exact policy — fails to
// produce a feasible allocation.
func (g *GridTiedAllocation) Process(currentState []float32, referenceCommand float32) (config.Allocation, bool) {
	logger := log.Or(g.Logger)

	if err := config.Check(g.Config); err != nil {
		logger.Warnf("gridtied: config check failed: %v", err)
		return nil, false
	}
	config.Remember(g.Config)

	items := g.Config.EnabledItems()

	if g.Config.SmallLoadEnabled {
		if result, ok := smallload.Attempt(items, currentState, referenceCommand, g.Config.SmallLoadDeadSize); ok {
			logger.Infof("gridtied: small-load fast path committed %d entries", len(result))
			return result, true
		}
		logger.Debugf("gridtied: small-load fast path declined, falling through to DP")
	}

	refs := policy.Compute(items, currentState, referenceCommand, g.Config.AllocationType)

	if result, ok := dpgrid.CheckExactPolicy(items, refs); ok {
		logger.Infof("gridtied: policy reference already feasible, exact policy")
		return result, true
	}

	result, ok := dpgrid.Solve(items, refs, referenceCommand, g.Config.AllocationResolution, g.Config.MultiThreadedDP)
	if !ok {
		logger.Warnf("gridtied: DP coarse solver found no feasible allocation")
		return nil, false
	}

	if !g.Config.RefinerEnabled {
		logger.Debugf("gridtied: refiner disabled, returning DP result")
		return result, true
	}

	refined, ok := refine.Run(g.Minimizer, items, refs, result, referenceCommand)
	if !ok {
		logger.Warnf("gridtied: refiner input malformed, returning DP result")
		return result, true
	}

	logger.Infof("gridtied: refiner committed %d entries", len(refined))
	return refined, true
}
