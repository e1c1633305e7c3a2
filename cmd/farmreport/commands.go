package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"poultry_monitor/internal/report"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// ErrViewerUnavailable is returned when the rendered report cannot be
// handed to the system browser.
var ErrViewerUnavailable = errors.New("could not open the report viewer")

// deps are the side effects of the CLI, swapped out in tests.
type deps struct {
	now     func() time.Time
	open    func(path string) error
	tempDir string
}

func defaultDeps() deps {
	return deps{now: time.Now, open: browser.OpenFile}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "farmreport",
		Short: "Render poultry farm section reports",
		Long: `farmreport renders the section reports of the poultry dashboard.

Sections: climate, supply, motion, devices, alerts, general.
Unknown sections fall back to the general report.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSectionsCmd(), newViewCmd(d), newExportCmd(d))
	return root
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List report sections",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range report.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}
}

func newViewCmd(d deps) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "view <section>",
		Short: "Write the report document with Print and Close actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := report.RenderDocument(report.Content(args[0], d.now()), report.ModeView)
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newExportCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "export <section>",
		Short: "Open the printable report in the browser for Save as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := export(d, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "opened %s; use Save as PDF in the print dialog\n", path)
			return nil
		},
	}
}

// export writes the print document of section to a temporary file and
// opens it. The file is removed again if no viewer can be started.
func export(d deps, section string) (string, error) {
	r := report.Content(section, d.now())
	doc, err := report.RenderDocument(r, report.ModePrint)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	f, err := os.CreateTemp(d.tempDir, "report-"+r.Section+"-*.html")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	if _, err := f.WriteString(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	if err := d.open(path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrViewerUnavailable, err)
	}
	return path, nil
}
