package app

import (
	"os"
	"path/filepath"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/pkg/appconsts"
)

// DefaultNodeHome is the default home directory of the node.
var DefaultNodeHome string

func init() {
	initConfig()
	initHome()
}

func initHome() {
	userHomeDir := os.Getenv("LIQUIDBURN_HOME")

	if userHomeDir == "" {
		var err error
		userHomeDir, err = os.UserHomeDir()
		if err != nil {
			panic(err)
		}
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

func initConfig() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(appconsts.Bech32PrefixAccAddr, appconsts.Bech32PrefixAccAddr+sdk.PrefixPublic)
	config.Seal()
}
