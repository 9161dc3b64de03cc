package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every stored employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			employees, err := opts.client().List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EMPLOYEE ID\tNAME\tEMAIL\tPHONE\tDEPARTMENT\tJOINED\tROLE")
			for _, e := range employees {
				fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\t%s\t%s\n",
					e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Phone, e.Department,
					e.DateOfJoining.String(), e.Role)
			}
			return tw.Flush()
		},
	}
}
