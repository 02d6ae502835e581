package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	registry := NewCommandRegistry(VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	registerCommands(registry)
	return registry.Execute(ctx, args, out, errOut)
}

func registerCommands(r *CommandRegistry) {
	r.Register(&Command{
		Name:        "welcome",
		Description: "Fetch the welcome message from the service root",
		Usage:       "remotectl welcome [flags]",
		Examples: []string{
			"remotectl welcome",
			"remotectl welcome --url http://localhost:8080",
		},
		Run: welcomeCommand,
	})

	r.Register(&Command{
		Name:        "health",
		Description: "Check that the service is up",
		Usage:       "remotectl health [flags]",
		Examples: []string{
			"remotectl health --timeout 2s",
		},
		Run: healthCommand,
	})

	r.Register(&Command{
		Name:        "send",
		Description: "Send a request envelope and print the response envelope",
		Usage:       "remotectl send --payload <json> [flags]",
		Examples: []string{
			`remotectl send --payload '{"ping":true}'`,
			`remotectl send --id job-42 --payload '[1,2,3]'`,
		},
		Run: sendCommand,
	})

	r.Register(&Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "remotectl version [flags]",
		Examples: []string{
			"remotectl version",
			"remotectl version --verbose",
		},
		Run: func(ctx context.Context, args []string, out io.Writer) error {
			return versionCommand(r.version, args, out)
		},
	})
}
