package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

func versionCommand(v VersionInfo, args []string, out io.Writer) error {
	fs := newFlagSet("version", out)
	verbose := fs.Bool("verbose", false, "Show Go runtime and module dependency versions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(out, "remotectl %s (commit: %s, built: %s)\n", v.Version, v.Commit, v.Date)
	if !*verbose {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Runtime Environment:")
	if err := printTable(out, []string{"Component", "Version"}, [][]string{
		{"Go", runtime.Version()},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
	}); err != nil {
		return err
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || len(info.Deps) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Dependencies:")
	rows := make([][]string, 0, len(info.Deps))
	for _, dep := range info.Deps {
		rows = append(rows, []string{dep.Path, dep.Version})
	}
	return printTable(out, []string{"Module", "Version"}, rows)
}
