package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newUUIDCommand() *cobra.Command {
	var count int
	var upper bool

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random (version 4) UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				id, err := uuid.NewRandom()
				if err != nil {
					return fmt.Errorf("generate uuid: %w", err)
				}
				text := id.String()
				if upper {
					text = strings.ToUpper(text)
				}
				if _, err := fmt.Fprintln(out, text); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs to generate")
	cmd.Flags().BoolVar(&upper, "upper", false, "Print in uppercase")

	return cmd
}
