// stacks: group the threads of a Linux host by their current kernel stack.
//
// Usage:
//
//	stacks [k|u][t] [PID ...]
//
// Every numeric entry under the procfs root is read (stat, comm, stack) and
// entries sharing the exact same stack text are printed together, largest
// group first, with a histogram of the thread names in each group.
//
// Flag cluster letters: k keeps kernel threads only, u keeps user threads
// only, t scans <root>/<PID>/task for each PID instead of the whole root.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/procfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// CLI
// ---------------------------------------------------------------------------

const usageTemplate = `Usage:
  stacks              all threads, grouped by kernel stack
  stacks k            kernel threads only
  stacks u            user threads only
  stacks t PID...     threads of the given processes
  stacks kt PID...    kernel threads of the given processes
  stacks ut PID...    user threads of the given processes

Output, per group (largest first):
  <thread count>
  (comm [pid, ...]), ...
  <kernel stack>

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}
`

// environment is what a run touches outside the process.
type environment struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(env environment) *cobra.Command {
	var (
		root  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "stacks [k|u][t] [PID...]",
		Short: "Group threads by their current kernel stack",
		Long: `Reads <root>/<N>/{stat,comm,stack} for every thread and prints the threads
blocked at the same place in the kernel together, most populated stack first.`,
		Example: `  stacks
  stacks u
  stacks kt 1234 5678
  stacks --root /host/proc t 1234`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(args)
			if err != nil {
				return err
			}

			log := newLogger(env.stderr, debug)
			defer func() { _ = log.Sync() }()

			if !opts.includeKernel && !opts.includeUser {
				log.Debug("both k and u given, every thread is excluded")
			}

			r := &reader{fs: env.fs, root: root, opts: opts, log: log}
			if err := cmdReport(env.stdout, r.scan()); err != nil {
				log.Warn("Could not write report: " + err.Error())
			}
			return nil
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVar(&root, "root", procfs.DefaultMountPoint, "procfs mount point to scan")
	cmd.Flags().BoolVar(&debug, "debug", false, "log scan summaries to stderr")
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	return cmd
}

// execute runs the command line args (without the program name) and
// returns the process exit status: 0 on success, 2 on a usage error. Every
// error reaching here is a usage error, either from parseOptions or from
// cobra's own flag parsing; read failures are only diagnosed.
func execute(args []string, env environment) int {
	cmd := newRootCmd(env)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(env.stderr, "error: %v\n\n", err)
		fmt.Fprint(env.stderr, cmd.UsageString())
		return 2
	}
	return 0
}

// ---------------------------------------------------------------------------
// main
// ---------------------------------------------------------------------------

func main() {
	os.Exit(execute(os.Args[1:], environment{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}))
}
