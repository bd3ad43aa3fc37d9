package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"pfr/internal/backend"
	"pfr/internal/config"
	"pfr/internal/core"
	"pfr/internal/log"
	"pfr/internal/services"
	"pfr/internal/snapshot"
)

const usage = `usage: pfr <command> [arguments]

Commands:
  init                                      create an empty ledger
  add <kind> <frequency> <name> <amount>    add a transaction
      [--category C] [--account A]          kind: income|expense
                                            frequency: weekly|monthly
  list                                      list ledger entries
  report                                    print the monthly report
  save <name>                               snapshot the ledger under a name
  load <name>                               replace the ledger with a snapshot
  backup                                    write the reserved backup snapshot
  restore                                   restore the ledger from the backup
`

// Run executes one pfr command and returns the process exit code.
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	LoadEnvFile()
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "pfr: %v\n", err)
		return 1
	}
	logger := SetupLogger(cfg.LogLevel)

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	ctx := context.Background()
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "init", "add", "list", "report":
		return runLedgerCommand(ctx, cfg, logger, cmd, rest, stdout, stderr)
	case "save", "load", "backup", "restore":
		return runSnapshotCommand(cfg, logger, cmd, rest, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "pfr: unknown command %q\n\n%s", cmd, usage)
		return 1
	}
}

func runLedgerCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, cmd string, args []string, stdout, stderr io.Writer) int {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "pfr: %v\n", err)
		return 1
	}
	result, err := backend.NewFactory(logger).CreateStore(ctx, backendCfg)
	if err != nil {
		fmt.Fprintf(stderr, "pfr: %v\n", err)
		return 1
	}
	svc := services.NewLedgerService(result.Store, logger)
	defer result.Cleanup()

	switch cmd {
	case "init":
		err = svc.Init(ctx)
	case "add":
		var tx core.Transaction
		tx, err = parseAddArgs(args)
		if err == nil {
			err = svc.Add(ctx, tx)
		}
	case "list":
		var txs []core.Transaction
		txs, err = svc.List(ctx)
		if err == nil {
			for _, tx := range txs {
				fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", tx.Kind, tx.Frequency, tx.Name, tx.Amount)
			}
		}
	case "report":
		var out string
		out, err = svc.Report(ctx)
		if err == nil {
			fmt.Fprint(stdout, out)
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "pfr: %v\n", err)
		return 1
	}
	return 0
}

func runSnapshotCommand(cfg *config.Config, logger *log.Logger, cmd string, args []string, stderr io.Writer) int {
	manager := snapshot.NewManager(cfg.DataPath(), cfg.SnapshotDir)
	snapLogger := logger.WithComponent(log.ComponentSnapshot)

	var err error
	switch cmd {
	case "save", "load":
		if len(args) != 1 {
			fmt.Fprintf(stderr, "pfr: %s requires a snapshot name\n", cmd)
			return 1
		}
		if cmd == "save" {
			err = manager.Save(args[0])
		} else {
			err = manager.Load(args[0])
		}
		if err == nil {
			snapLogger.Info("Snapshot "+cmd+" completed", log.FieldSnapshot, args[0])
		}
	case "backup":
		err = manager.Backup()
	case "restore":
		err = manager.Restore()
	}

	if err != nil {
		fmt.Fprintf(stderr, "pfr: %v\n", err)
		return 1
	}
	return 0
}

// parseAddArgs parses `add <kind> <frequency> <name> <amount>` followed by
// the optional --category and --account flags.
func parseAddArgs(args []string) (core.Transaction, error) {
	var tx core.Transaction
	if len(args) < 4 {
		return tx, fmt.Errorf("add requires <kind> <frequency> <name> <amount>")
	}

	kind, err := core.ParseKind(args[0])
	if err != nil {
		return tx, fmt.Errorf("%w: %q", err, args[0])
	}
	freq, err := core.ParseFrequency(args[1])
	if err != nil {
		return tx, fmt.Errorf("%w: %q", err, args[1])
	}
	name := strings.TrimSpace(args[2])
	amount, err := core.ParseAmount(args[3])
	if err != nil {
		return tx, fmt.Errorf("%w: %q", err, args[3])
	}

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "expense category")
	account := fs.String("account", "", "account the transaction is charged to")
	if err := fs.Parse(args[4:]); err != nil {
		return tx, err
	}
	if fs.NArg() != 0 {
		return tx, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	tx = core.Transaction{
		Kind:      kind,
		Frequency: freq,
		Name:      name,
		Amount:    amount,
		Category:  core.OptionalString(*category),
		Account:   core.OptionalString(*account),
	}
	return tx, tx.Validate()
}
