package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/paycalc/internal/cli"
	"github.com/Veraticus/paycalc/internal/common"
	"github.com/Veraticus/paycalc/internal/config"
	"github.com/Veraticus/paycalc/internal/report"
)

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	handler := cli.NewInterruptHandler(out)
	ctx, stop := handler.HandleInterrupts(ctx)
	defer stop()

	logger := slog.Default().With("session", uuid.NewString())
	session := cli.NewSession(cmd.InOrStdin(), out, logger)

	result, err := session.Run(ctx)
	if err != nil {
		// Validation failures were already shown to the user; the session just ends.
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			return nil
		}
		if errors.Is(err, cli.ErrInputCancelled) && handler.WasInterrupted() {
			return nil
		}
		return err
	}

	path := viper.GetString("session.payslip")
	if path == "" {
		return nil
	}

	path = config.ExpandPath(path)
	if err := writePayslip(path, result); err != nil {
		common.LogError(err, "Failed to write payslip", common.Fields{"path": path})
		return err
	}
	logger.Info("Payslip written", "path", path)
	_, err = fmt.Fprintln(out, cli.FormatSuccess("Payslip written to "+path))
	return err
}

func writePayslip(path string, result *cli.Result) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create payslip directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create payslip: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close payslip: %w", closeErr)
		}
	}()

	return report.WritePayslip(f, result.Worker, result.Summary)
}
