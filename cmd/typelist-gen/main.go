// Package main provides the CLI entrypoint for typelist-gen.
//
// typelist-gen derives what the typelist library cannot express by itself:
//   - canonical field lists (IntoCanon/FromCanon) for configured structs
//   - shuffle and deep-transform witnesses between records
//   - the fixed-arity tuple package
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeshaw/envdecode"
)

const appName = "typelist-gen"

// Env holds the settings read from the environment. Flags override them.
type Env struct {
	// Debug enables debug logging and plan dumps. ENV: TYPELIST_DEBUG
	Debug bool `env:"TYPELIST_DEBUG,default=false"`
	// MaxTuple is the default arity of the tuples command. ENV: TYPELIST_MAX_TUPLE
	MaxTuple int `env:"TYPELIST_MAX_TUPLE,default=16"`
	// Config is the default config file. ENV: TYPELIST_CONFIG
	Config string `env:"TYPELIST_CONFIG,default=typelist.yaml"`
}

func loadEnv() (Env, error) {
	env := Env{MaxTuple: 16, Config: "typelist.yaml"}

	err := envdecode.Decode(&env)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return env, fmt.Errorf("reading environment: %w", err)
	}

	return env, nil
}

type app struct {
	env    Env
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newApp(env Env, stdout, stderr io.Writer) *app {
	level := slog.LevelInfo
	if env.Debug {
		level = slog.LevelDebug
	}

	return &app{
		env:    env,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout: stdout,
		stderr: stderr,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	env, err := loadEnv()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	a := newApp(env, stdout, stderr)

	switch cmd := args[0]; cmd {
	case "gen":
		return a.cmdGen(ctx, args[1:])
	case "check":
		return a.cmdCheck(ctx, args[1:])
	case "tuples":
		return a.cmdTuples(args[1:])
	case "schema":
		return a.cmdSchema(args[1:])
	case "watch":
		return a.cmdWatch(ctx, args[1:])
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n", appName, cmd)
		usage(stderr)

		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %[1]s gen    [-config file] [-lib path] [-v]   Generate the configured packages.
  %[1]s check  [-config file] [-lib path]        Exit 1 if generated files are stale.
  %[1]s watch  [-config file] [-lib path]        Regenerate whenever sources change.
  %[1]s tuples [-max n] [-pkg name] [-out file]  Generate the tuple package.
  %[1]s schema [-out file]                       Print the JSON schema of the config file.

Environment:
  TYPELIST_CONFIG     default config file (typelist.yaml)
  TYPELIST_MAX_TUPLE  default tuple arity (16)
  TYPELIST_DEBUG      debug logging and plan dumps
`, appName)
}
