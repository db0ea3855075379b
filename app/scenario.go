package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"

	"github.com/celestiaorg/liquidburn/internal/bank"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Scenario is a scripted sequence of atomic groups replayed against a fresh
// node. Accounts are referenced by name (see ResolveAccount).
type Scenario struct {
	Authority   string        `yaml:"authority"`
	RewardDenom string        `yaml:"reward_denom"`
	Balances    []BalanceSpec `yaml:"balances"`
	Groups      []GroupSpec   `yaml:"groups"`
}

// BalanceSpec is a genesis balance, for example "1000utia,5ubrn".
type BalanceSpec struct {
	Account string `yaml:"account"`
	Coins   string `yaml:"coins"`
}

// GroupSpec is one atomic group of a scenario and what it is expected to do.
type GroupSpec struct {
	Name        string      `yaml:"name"`
	Steps       []StepSpec  `yaml:"steps"`
	ExpectError string      `yaml:"expect_error"`
	ExpectValue *uint64     `yaml:"expect_value"`
	Expect      *LedgerSpec `yaml:"expect"`
}

// StepSpec is one step of a group. Kind selects which fields apply.
type StepSpec struct {
	Kind      string `yaml:"kind"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Asset     string `yaml:"asset"`
	Amount    uint64 `yaml:"amount"`
	Method    string `yaml:"method"`
	Caller    string `yaml:"caller"`
	BurnAsset string `yaml:"burn_asset"`
	Admin     string `yaml:"admin"`
}

// LedgerSpec lists the ledger counters expected after a group. Unset fields
// are not checked.
type LedgerSpec struct {
	TotalBurned *uint64 `yaml:"total_burned"`
	TotalShares *uint64 `yaml:"total_shares"`
	RewardPool  *uint64 `yaml:"reward_pool"`
}

// GroupOutcome records how one scenario group was applied.
type GroupOutcome struct {
	Name   string       `json:"name"`
	Result *BlockResult `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(bz)
}

// ParseScenario decodes a YAML scenario.
func ParseScenario(bz []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Authority == "" {
		return nil, errors.New("scenario has no authority")
	}
	return &s, nil
}

// Options returns the node options the scenario runs with.
func (s *Scenario) Options() (Options, error) {
	authority, err := ResolveAccount(s.Authority)
	if err != nil {
		return Options{}, fmt.Errorf("authority: %w", err)
	}
	opts := DefaultOptions()
	opts.Authority = authority
	if s.RewardDenom != "" {
		opts.RewardDenom = s.RewardDenom
	}
	return opts, nil
}

// Genesis returns the genesis state funding every scenario balance.
func (s *Scenario) Genesis() (GenesisState, error) {
	bankGenesis := bank.DefaultGenesis()
	for i, b := range s.Balances {
		addr, err := ResolveAccount(b.Account)
		if err != nil {
			return nil, fmt.Errorf("balance %d: %w", i, err)
		}
		coins, err := sdk.ParseCoinsNormalized(b.Coins)
		if err != nil {
			return nil, fmt.Errorf("balance %d: %w", i, err)
		}
		bankGenesis.Balances = append(bankGenesis.Balances, bank.Balance{Address: addr, Coins: coins})
	}
	gs := NewDefaultGenesisState()
	gs[bank.ModuleName] = mustMarshal(bankGenesis)
	return gs, nil
}

// Group builds the atomic group described by g.
func (g GroupSpec) Group() (types.Group, error) {
	steps := make([]types.Step, 0, len(g.Steps))
	for i, spec := range g.Steps {
		step, err := spec.Step()
		if err != nil {
			return types.Group{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return types.NewGroup(steps...), nil
}

// Step builds the group step described by s.
func (s StepSpec) Step() (types.Step, error) {
	switch s.Kind {
	case types.StepKindPayment:
		from, to, err := resolvePair(s.From, s.To)
		if err != nil {
			return nil, err
		}
		return types.NewPaymentStep(from, to, s.Amount), nil
	case types.StepKindAssetTransfer:
		from, to, err := resolvePair(s.From, s.To)
		if err != nil {
			return nil, err
		}
		return types.NewAssetTransferStep(from, to, s.Asset, s.Amount), nil
	case types.StepKindCall:
		caller, err := ResolveAccount(s.Caller)
		if err != nil {
			return nil, fmt.Errorf("caller: %w", err)
		}
		call, err := s.call()
		if err != nil {
			return nil, err
		}
		return types.NewCallStep(caller, call), nil
	default:
		return nil, fmt.Errorf("unknown step kind %q", s.Kind)
	}
}

func (s StepSpec) call() (types.Call, error) {
	switch s.Method {
	case types.MethodInitialize:
		admin, err := ResolveAccount(s.Admin)
		if err != nil {
			return nil, fmt.Errorf("admin: %w", err)
		}
		return types.InitializeCall{BurnAsset: s.BurnAsset, Admin: admin}, nil
	case types.MethodFund:
		return types.FundCall{}, nil
	case types.MethodBurn:
		return types.BurnCall{Amount: s.Amount}, nil
	case types.MethodClaim:
		return types.ClaimCall{}, nil
	default:
		return nil, fmt.Errorf("unknown method %q", s.Method)
	}
}

func resolvePair(from, to string) (sdk.AccAddress, sdk.AccAddress, error) {
	sender, err := ResolveAccount(from)
	if err != nil {
		return nil, nil, fmt.Errorf("from: %w", err)
	}
	receiver, err := ResolveAccount(to)
	if err != nil {
		return nil, nil, fmt.Errorf("to: %w", err)
	}
	return sender, receiver, nil
}

// Replay initializes app from the scenario genesis and delivers every group
// in order, checking each group's expectations. It stops at the first
// expectation that does not hold.
func (app *App) Replay(s *Scenario) ([]GroupOutcome, error) {
	gs, err := s.Genesis()
	if err != nil {
		return nil, err
	}
	if err := app.InitChain(gs); err != nil {
		return nil, err
	}

	outcomes := make([]GroupOutcome, 0, len(s.Groups))
	for i, spec := range s.Groups {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("group %d", i)
		}
		group, err := spec.Group()
		if err != nil {
			return outcomes, fmt.Errorf("%s: %w", name, err)
		}

		result, err := app.DeliverGroup(group)
		outcome := GroupOutcome{Name: name, Result: result}
		if err != nil {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)

		if err := app.checkExpectations(spec, result, err); err != nil {
			return outcomes, fmt.Errorf("%s: %w", name, err)
		}
	}
	return outcomes, nil
}

func (app *App) checkExpectations(spec GroupSpec, result *BlockResult, deliverErr error) error {
	switch {
	case spec.ExpectError == "" && deliverErr != nil:
		return fmt.Errorf("unexpected error: %w", deliverErr)
	case spec.ExpectError != "" && deliverErr == nil:
		return fmt.Errorf("expected error containing %q", spec.ExpectError)
	case spec.ExpectError != "" && !strings.Contains(deliverErr.Error(), spec.ExpectError):
		return fmt.Errorf("expected error containing %q, got %q", spec.ExpectError, deliverErr)
	}

	if spec.ExpectValue != nil {
		if result == nil || len(result.Steps) == 0 {
			return fmt.Errorf("expected value %d but the group produced no results", *spec.ExpectValue)
		}
		if got := result.Steps[len(result.Steps)-1].Value; got != *spec.ExpectValue {
			return fmt.Errorf("expected value %d, got %d", *spec.ExpectValue, got)
		}
	}

	if spec.Expect == nil {
		return nil
	}
	snapshot, err := app.Snapshot()
	if err != nil {
		return err
	}
	if snapshot.Ledger == nil {
		return errors.New("expected ledger counters but the ledger is not initialized")
	}
	checks := []struct {
		name string
		want *uint64
		got  uint64
	}{
		{"total_burned", spec.Expect.TotalBurned, snapshot.Ledger.TotalBurned},
		{"total_shares", spec.Expect.TotalShares, snapshot.Ledger.TotalShares},
		{"reward_pool", spec.Expect.RewardPool, snapshot.Ledger.RewardPool},
	}
	for _, c := range checks {
		if c.want != nil && *c.want != c.got {
			return fmt.Errorf("expected %s %d, got %d", c.name, *c.want, c.got)
		}
	}
	return nil
}
