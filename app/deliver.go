package app

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// BlockResult describes a committed block.
type BlockResult struct {
	Height  int64              `json:"height"`
	AppHash []byte             `json:"app_hash"`
	Steps   []types.StepResult `json:"steps"`
	Events  sdk.Events         `json:"events"`
}

// DeliverGroup executes group as the only content of the next block, runs
// the end blocker, checks invariants and commits. A rejected group leaves
// the committed state untouched and produces no block.
func (app *App) DeliverGroup(group types.Group) (*BlockResult, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	height := app.LastBlockHeight() + 1
	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, height)

	steps, err := app.LiquidBurnKeeper.ExecuteGroup(ctx, group)
	if err != nil {
		app.logger.Debug("rejected group", "height", height, "error", err)
		return nil, err
	}
	if err := app.module.EndBlock(ctx); err != nil {
		return nil, fmt.Errorf("end block: %w", err)
	}
	if msg, broken := app.invariants.assert(ctx); broken {
		return nil, fmt.Errorf("%w at height %d: %s", ErrInvariantBroken, height, msg)
	}

	cache.Write()
	commitID := app.cms.Commit()
	app.logger.Info("committed block", "height", commitID.Version, "steps", len(steps))

	return &BlockResult{
		Height:  commitID.Version,
		AppHash: commitID.Hash,
		Steps:   steps,
		Events:  ctx.EventManager().Events(),
	}, nil
}
