package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/gofrs/flock"

	"github.com/celestiaorg/liquidburn/app"
)

// node is an opened application together with the resources it holds.
type node struct {
	*app.App
	lock *flock.Flock
}

// openNode locks the home directory, opens the database and initializes the
// chain from genesis.json if nothing has been committed yet.
func openNode(cc *commandContext) (*node, error) {
	home := cc.config.Home()
	opts, err := cc.config.AppOptions()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(DataDir(home), 0o755); err != nil {
		return nil, err
	}
	lock := flock.New(lockFile(home))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", home, err)
	}
	if !locked {
		return nil, fmt.Errorf("home directory %s is in use by another process", home)
	}

	db, err := dbm.NewDB("application", dbm.BackendType(cc.config.DBBackend), DataDir(home))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a, err := app.New(cc.logger, db, opts)
	if err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	n := &node{App: a, lock: lock}

	if a.LastBlockHeight() == 0 {
		gs, err := readGenesis(GenesisFile(home))
		if err != nil {
			n.Close()
			return nil, err
		}
		if err := a.InitChain(gs); err != nil {
			n.Close()
			return nil, err
		}
	}
	return n, nil
}

// Close releases the database and the home directory lock.
func (n *node) Close() {
	_ = n.App.Close()
	_ = n.lock.Unlock()
}

func lockFile(home string) string {
	return filepath.Join(DataDir(home), lockFileName)
}

func readGenesis(path string) (app.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return app.NewDefaultGenesisState(), nil
	}
	if err != nil {
		return nil, err
	}
	var gs app.GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return gs, nil
}

func printJSON(w io.Writer, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
