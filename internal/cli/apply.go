package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"clubform/internal/form"
)

type applyOptions struct {
	name        string
	phone       string
	prn         string
	email       string
	club        string
	domain      string
	skills      []string
	emailSuffix string
}

func applyCmd(root *rootOptions) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Fill in and submit a membership application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller := form.NewController(root.client(), opts.emailSuffix)
			if err := fill(controller, opts); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			state := controller.State()
			for _, skill := range state.Skills() {
				if !slices.Contains(state.AvailableSkills(), skill) {
					fmt.Fprintf(out, "note: %q is not offered for domain %q\n", skill, state.Value(form.FieldDomain))
				}
			}

			err := controller.Submit(cmd.Context())
			state = controller.State()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), state.Error())
				if errors.Is(err, form.ErrValidation) {
					return err
				}
				return fmt.Errorf("submit application: %w", err)
			}
			fmt.Fprintln(out, state.Success())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "Applicant name")
	flags.StringVar(&opts.phone, "phone", "", "Phone number")
	flags.StringVar(&opts.prn, "prn", "", "PRN (at most 8 characters, longer input is cut)")
	flags.StringVar(&opts.email, "email", "", "Institutional email address")
	flags.StringVar(&opts.club, "club", "", "Club to join")
	flags.StringVar(&opts.domain, "domain", "", "Academic domain")
	flags.StringArrayVar(&opts.skills, "skill", nil, "Skill to select; repeat for several")
	flags.StringVar(&opts.emailSuffix, "email-suffix", form.DefaultEmailSuffix, "Required email suffix")
	return cmd
}

func fill(controller *form.Controller, opts applyOptions) error {
	fields := []struct {
		field form.Field
		value string
	}{
		{form.FieldName, opts.name},
		{form.FieldPhone, opts.phone},
		{form.FieldPRN, opts.prn},
		{form.FieldEmail, opts.email},
		{form.FieldClub, opts.club},
		{form.FieldDomain, opts.domain},
	}
	for _, f := range fields {
		if err := controller.Set(f.field, f.value); err != nil {
			return err
		}
	}
	for _, skill := range opts.skills {
		if !controller.State().HasSkill(skill) {
			controller.ToggleSkill(skill)
		}
	}
	return nil
}
