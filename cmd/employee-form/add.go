package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/geocoder89/employeehub/internal/client"
	"github.com/geocoder89/employeehub/internal/form"
	"github.com/spf13/cobra"
)

var errAddFailed = errors.New("employee not added")

func newAddCmd(opts *rootOptions) *cobra.Command {
	var f form.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Validate and submit one employee",
		Example: `  employee-form add --first-name Ada --last-name Lovelace --employee-id E100 \
    --email ada@example.com --phone 5551234567 --department Engineering \
    --date-of-joining 2024-01-15 --role Engineer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd, opts.client(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.FirstName, "first-name", "", "First name")
	flags.StringVar(&f.LastName, "last-name", "", "Last name")
	flags.StringVar(&f.EmployeeID, "employee-id", "", "Employee ID (at most 10 characters)")
	flags.StringVar(&f.Email, "email", "", "Email address")
	flags.StringVar(&f.Phone, "phone", "", "Phone number (10 digits)")
	flags.StringVar(&f.Department, "department", "", fmt.Sprintf("Department, one of %v", form.Departments()))
	flags.StringVar(&f.DateOfJoining, "date-of-joining", "", "Date of joining, YYYY-MM-DD")
	flags.StringVar(&f.Role, "role", "", "Role")

	return cmd
}

func runAdd(cmd *cobra.Command, c *client.Client, f form.Form) error {
	out := cmd.OutOrStdout()

	feedback, fieldErrs, err := c.Submit(cmd.Context(), f)
	if errors.Is(err, client.ErrInvalidForm) {
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			fmt.Fprintf(out, "  %s: %s\n", field, fieldErrs[field])
		}
		return errAddFailed
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, feedback.Message)
	if !feedback.OK() {
		return errAddFailed
	}
	return nil
}
