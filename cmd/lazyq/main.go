// Command lazyq filters, projects, sorts and groups the records of a JSON array.
//
//	lazyq -c query.yml -i people.json --pretty
//	cat people.json | lazyq --select name,age --take 3
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"lazyq/config"
	"lazyq/jsonq"
	"lazyq/query"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lazyq:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("lazyq", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfgFile, _ := fs.GetString("config")
	envFile, _ := fs.GetString("env-file")
	cfg, err := config.Load(
		config.WithConfigFile(cfgFile),
		config.WithEnvFile(envFile),
		config.WithFlags(fs),
	)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Log, stdout, stderr)
	query.SetLogger(log)

	plan, err := jsonq.NewPlan(cfg.Query, jsonq.WithLogger(log))
	if err != nil {
		return err
	}

	data, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	log.Debug().Str("input", cfg.Input).Int("bytes", len(data)).Msg("input loaded")

	out, err := plan.Run(data)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	return writeOutput(cfg.Output, stdout, jsonq.Format(out, cfg.Pretty))
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
