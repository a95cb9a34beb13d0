package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Job costs and payouts. Flat numbers keep command outcomes predictable,
// which the console's && / || chaining depends on.
const (
	crimeEnergyCost = 10
	crimeHeatGain   = 15
	crimeBasePay    = 50
	hideoutCost     = 50
	maxEnergy       = 100
)

var places = []string{"downtown", "docks", "suburbs", "old town"}

// Runner dispatches atomic commands against a game state. It satisfies the
// interpreter's runner contract: output plus error, one call at a time.
type Runner struct {
	state *State
}

// NewRunner creates a runner bound to the given state.
func NewRunner(s *State) *Runner {
	return &Runner{state: s}
}

// State returns the runner's game state.
func (r *Runner) State() *State {
	return r.state
}

// Run executes one atomic command string. A failed command returns a
// non-nil error; the interpreter folds it into the chain result.
func (r *Runner) Run(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}
	args := fields[1:]

	switch fields[0] {
	case "status":
		return r.status(), nil
	case "crime":
		return r.crime()
	case "hideout":
		return r.hideout()
	case "bank":
		return r.bank(args)
	case "rest":
		return r.rest(), nil
	case "travel":
		return r.travel(args)
	case "help":
		return commandHelp, nil
	default:
		return "", fmt.Errorf("unknown command: %q (try help)", fields[0])
	}
}

func (r *Runner) status() string {
	s := r.state
	lines := []string{
		fmt.Sprintf("cash: $%d", s.Cash),
		fmt.Sprintf("bank: $%d", s.Bank),
		fmt.Sprintf("heat: %d", s.Heat),
		fmt.Sprintf("level: %d", s.Level),
		fmt.Sprintf("energy: %d", s.Energy),
		fmt.Sprintf("location: %s", s.Location),
	}
	return strings.Join(lines, "\n")
}

func (r *Runner) crime() (string, error) {
	s := r.state
	if s.Energy < crimeEnergyCost {
		return "", fmt.Errorf("too exhausted to pull a job (energy %d)", s.Energy)
	}
	pay := crimeBasePay * s.Level
	s.Cash += pay
	s.Heat += crimeHeatGain
	s.Energy -= crimeEnergyCost
	return fmt.Sprintf("job done: +$%d, heat %d", pay, s.Heat), nil
}

func (r *Runner) hideout() (string, error) {
	s := r.state
	if s.Heat == 0 {
		return "already cold", nil
	}
	if s.Cash < hideoutCost {
		return "", fmt.Errorf("need $%d to lay low", hideoutCost)
	}
	s.Cash -= hideoutCost
	s.Heat /= 2
	return fmt.Sprintf("laying low: heat down to %d", s.Heat), nil
}

func (r *Runner) bank(args []string) (string, error) {
	s := r.state
	if len(args) == 0 {
		return fmt.Sprintf("bank balance: $%d", s.Bank), nil
	}
	if len(args) < 2 {
		return "", fmt.Errorf("usage: bank <deposit|withdraw> <amount>")
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil || amount <= 0 {
		return "", fmt.Errorf("bank: bad amount %q", args[1])
	}
	switch args[0] {
	case "deposit":
		if amount > s.Cash {
			return "", fmt.Errorf("bank: only $%d on hand", s.Cash)
		}
		s.Cash -= amount
		s.Bank += amount
		return fmt.Sprintf("deposited $%d, balance $%d", amount, s.Bank), nil
	case "withdraw":
		if amount > s.Bank {
			return "", fmt.Errorf("bank: only $%d in the vault", s.Bank)
		}
		s.Bank -= amount
		s.Cash += amount
		return fmt.Sprintf("withdrew $%d, balance $%d", amount, s.Bank), nil
	default:
		return "", fmt.Errorf("bank: unknown operation %q", args[0])
	}
}

func (r *Runner) rest() string {
	r.state.Energy = maxEnergy
	return "rested: energy full"
}

func (r *Runner) travel(args []string) (string, error) {
	if len(args) == 0 {
		return "places: " + strings.Join(places, ", "), nil
	}
	dest := strings.Join(args, " ")
	for _, p := range places {
		if p == dest {
			r.state.Location = dest
			return "now in " + dest, nil
		}
	}
	return "", fmt.Errorf("no such place: %q", dest)
}

const commandHelp = `commands:
  status                    show your numbers
  crime                     pull a job (costs energy, raises heat)
  hideout                   lay low to halve heat (costs cash)
  bank [deposit|withdraw n] vault operations
  rest                      restore energy
  travel [place]            move around, or list places
  help                      this text`
