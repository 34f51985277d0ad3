package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-stackqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-stackqueue/pkg/logger"
	"github.com/huynhanx03/go-stackqueue/pkg/settings"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// run executes the root command with args, writing demo lines to out.
func run(args []string, out io.Writer) error {
	cmd := newRootCmd(out)
	cmd.SetArgs(itemsAfterDash(cmd.Flags(), args))
	return cmd.Execute()
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configPath string
		capacity   int
	)

	cmd := &cobra.Command{
		Use:           "stackqueue [items...]",
		Short:         "Enqueue items into a two-stack queue and dequeue them back in FIFO order",
		Example:       "  stackqueue\n  stackqueue --capacity 4 -1 2 3\n  stackqueue -c configs/stackqueue.yaml",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load(configPath)
			if err != nil {
				return apperr.MapError("config", err, apperr.CodeConfigInvalid, apperr.MsgLoadFailed, apperr.ExitFailure)
			}
			if cmd.Flags().Changed("capacity") {
				cfg.Queue.Capacity = capacity
			}
			if len(args) > 0 {
				if cfg.Queue.Items, err = parseItems(args); err != nil {
					return apperr.NewError("items", apperr.CodeConfigInvalid, apperr.MsgLoadFailed, apperr.ExitFailure, err)
				}
			}
			if err := settings.Validate(cfg); err != nil {
				return apperr.MapError("config", err, apperr.CodeConfigInvalid, apperr.MsgLoadFailed, apperr.ExitFailure)
			}

			log, err := logger.New(cfg.Logger)
			if err != nil {
				return apperr.MapError("logger", err, apperr.CodeLoggerFailed, apperr.MsgCreateFailed, apperr.ExitFailure)
			}
			defer func() { _ = log.Sync() }()

			if err := runDemo(cfg.Queue, out, log); err != nil {
				log.Error("demo failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVar(&capacity, "capacity", settings.DefaultCapacity, "queue capacity")
	return cmd
}

func parseItems(args []string) ([]int, error) {
	items := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "item %q is not an integer", arg)
		}
		items = append(items, v)
	}
	return items, nil
}

// itemsAfterDash moves positional arguments, including negative integers
// that pflag would take for shorthand flags, behind a "--" so flags keep
// their values and items keep their order.
func itemsAfterDash(fs *pflag.FlagSet, args []string) []string {
	flags := make([]string, 0, len(args))
	items := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			items = append(items, args[i+1:]...)
			i = len(args)
		case len(arg) < 2 || arg[0] != '-' || isInt(arg):
			items = append(items, arg)
		default:
			flags = append(flags, arg)
			if takesValue(fs, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return append(append(flags, "--"), items...)
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = fs.Lookup(name)
	} else if len(arg) == 2 {
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func exitCode(err error) int {
	if err == nil {
		return apperr.ExitOK
	}
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return apperr.ExitFailure
}
