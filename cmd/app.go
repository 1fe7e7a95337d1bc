// Package cmd implements the CLI application to compute and save investment plans.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/sip"
	"github.com/etnz/sip/store"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculators")
	c.Register(&goalCmd{}, "calculators")
	c.Register(&viewCmd{}, "calculators")
	c.Register(&resetCmd{}, "calculators")
	c.Register(&stateCmd{}, "calculators")
	c.Register(&exportCmd{}, "calculators")

	c.Register(&planSaveCmd{}, "plans")
	c.Register(&plansCmd{}, "plans")
	c.Register(&planRmCmd{}, "plans")
	c.Register(&planStatusCmd{}, "plans")
	c.Register(&fundsCmd{}, "plans")
	c.Register(&publishCmd{}, "plans")

	c.Register(&serveCmd{}, "tools")
	c.Register(&AssistCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// Store keys of the two calculators.
const (
	SIPKey  = "sipCalculatorState"
	GoalKey = "goalPlannerState"
)

// Environment variables used when the matching global flag is not set.
const (
	EnvStore       = "SIPC_STORE"
	EnvStoreDir    = "SIPC_STORE_DIR"
	EnvDatabaseURL = "SIPC_DATABASE_URL"
	EnvVerbose     = "SIPC_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeKind = flag.String("store", "", "Storage backend: 'dir', 'postgres' or 'memory'. Defaults to $"+EnvStore+" or 'dir'.")
var storeDir = flag.String("store-dir", "", "Folder of the 'dir' storage. Defaults to $"+EnvStoreDir+" or '.sipc'.")
var databaseURL = flag.String("database-url", "", "Connection URL of the 'postgres' storage. Defaults to $"+EnvDatabaseURL+".")
var stateKey = flag.String("key", "", "Store key of the calculator, overrides the command's default key.")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose logs. Defaults to $"+EnvVerbose+".")

// setting returns the flag value, or the environment variable, or the default.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

var logger *zap.Logger

// Logger returns the application logger: development logs when verbose, warnings only otherwise.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	var err error
	if verbose() {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

// OpenStore opens the configured storage, close releases it.
func OpenStore(ctx context.Context) (s sip.Store, close func(), err error) {
	switch kind := setting(*storeKind, EnvStore, "dir"); kind {
	case "dir":
		d, err := store.OpenDir(setting(*storeDir, EnvStoreDir, ".sipc"), Logger())
		return d, func() {}, err
	case "memory":
		return store.NewMemory(), func() {}, nil
	case "postgres":
		url := setting(*databaseURL, EnvDatabaseURL, "")
		if url == "" {
			return nil, nil, fmt.Errorf("the postgres storage requires -database-url or $%s", EnvDatabaseURL)
		}
		p, err := store.OpenPostgres(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q, expected 'dir', 'postgres' or 'memory'", kind)
	}
}

// calculatorKey returns the key of the calculator, 'def' unless -key is set.
func calculatorKey(def string) string {
	if *stateKey != "" {
		return *stateKey
	}
	return def
}

// defaultsFor returns the first use state of the calculator stored under key.
func defaultsFor(key string) sip.CalculatorState {
	if key == GoalKey {
		return sip.DefaultGoalState()
	}
	return sip.DefaultState()
}

// OpenSession opens the calculator stored under 'key' in the configured storage.
func OpenSession(ctx context.Context, key string) (*sip.Session, func(), error) {
	s, closer, err := OpenStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return sip.NewSession(s, key, sip.WithLogger(Logger()), sip.WithDefaults(defaultsFor(key))), closer, nil
}

// OpenPlanBook opens the saved plans in the configured storage.
func OpenPlanBook(ctx context.Context) (*sip.PlanBook, func(), error) {
	s, closer, err := OpenStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	b, err := sip.OpenPlanBook(s, "savedPlans")
	if err != nil {
		closer()
		return nil, nil, err
	}
	return b, closer, nil
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// printMarkdown prints markdown to stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	writeMarkdown(os.Stdout, md)
}

func writeMarkdown(w io.Writer, md string) {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}

// printValidation prints the failures of a computation.
func printValidation(err error) {
	var verr *sip.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, "Error: invalid plan")
	for _, f := range verr.Fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", f.Field, f.Message)
	}
}
