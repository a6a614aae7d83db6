package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"callnotes-backend/internal/annotate"
)

func newAnnotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate [file]",
		Short: "Run the rule engine over call notes from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			note := strings.TrimSpace(string(raw))
			if note == "" {
				return fmt.Errorf("empty call note")
			}

			res, err := annotate.RuleAnnotator{}.Annotate(cmd.Context(), note, time.Now())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}
