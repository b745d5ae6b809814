package cli

import (
	"errors"
	"fmt"
	"io"

	"gym-portal/internal/wizard"
	"gym-portal/pkg/bmi"

	"github.com/spf13/cobra"
)

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Register a membership through the signup wizard",
		Long: `Walk through the four signup steps: personal information, health
information, guardian contacts and the terms checklist. The form is sent
once, after the terms are accepted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := wizard.NewController(rootOpts.apiClient())
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return runSignup(cmd, ctrl, p)
		},
	}
}

type stepPrompt func(*wizard.Controller, *prompter) error

func runSignup(cmd *cobra.Command, ctrl *wizard.Controller, p *prompter) error {
	out := cmd.OutOrStdout()
	prompts := map[int]stepPrompt{
		1: promptPersonalInfo,
		2: promptHealthInfo,
		3: promptGeneralInfo,
		4: promptTerms,
	}

	for {
		step := ctrl.Step()
		fmt.Fprintf(out, "\nStep %d/%d  %s  [%s]\n", step, len(ctrl.Steps()), ctrl.Label(), wizard.StepRoute(step))

		if err := prompts[step](ctrl, p); err != nil {
			return err
		}
		if step == len(ctrl.Steps()) {
			break
		}

		if err := ctrl.GoNext(); err != nil {
			var stepErr *wizard.StepError
			if errors.As(err, &stepErr) {
				fmt.Fprintln(out, stepErr.Message)
				continue
			}
			return err
		}
	}

	if !ctrl.CanSubmit() {
		return fmt.Errorf("terms were not accepted, nothing was submitted")
	}

	// Server messages are returned verbatim; the form is not resubmitted.
	resp, err := ctrl.Submit(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "User %s registered successfully!\n", resp.Username)
	fmt.Fprintf(out, "Log in at %s\n", wizard.LoginRoute())
	return nil
}

func promptPersonalInfo(ctrl *wizard.Controller, p *prompter) error {
	form := ctrl.Form().PersonalInfo
	fields := []struct {
		name, label, current string
	}{
		{"username", "Username", form.Username},
		{"email", "Email", form.Email},
		{"password", "Password", ""},
		{"retypePassword", "Retype password", ""},
		{"phone", "Phone", form.Phone},
		{"gender", "Gender (male/female/other)", form.Gender},
		{"nationality", "Nationality", form.Nationality},
		{"birthdate", "Birthdate (YYYY-MM-DD)", form.Birthdate},
		{"fitnessType", "Fitness type", form.FitnessType},
		{"fitnessGoal", "Fitness goal", form.FitnessGoal},
	}

	change := ctrl.HandleChange(wizard.SectionPersonalInfo)
	for _, f := range fields {
		answer, err := p.ask(f.label, f.current)
		if err != nil {
			return err
		}
		if err := change(wizard.FieldEvent{Name: f.name, Value: answer}); err != nil {
			return err
		}
	}
	return nil
}

func promptHealthInfo(ctrl *wizard.Controller, p *prompter) error {
	form := ctrl.Form().HealthInfo
	change := ctrl.HandleChange(wizard.SectionHealthInfo)

	for _, f := range []struct {
		name, label, current string
	}{
		{"weightUnit", "Weight unit (kg/lbs)", form.WeightUnit},
		{"weight", "Weight", form.Weight},
		{"heightUnit", "Height unit (cm/m/in/ft)", form.HeightUnit},
		{"height", "Height", form.Height},
	} {
		answer, err := p.ask(f.label, f.current)
		if err != nil {
			return err
		}
		if err := change(wizard.FieldEvent{Name: f.name, Value: answer}); err != nil {
			fmt.Fprintln(p.out, err)
		}
	}

	if result, ok := ctrl.BMIDetails(); ok {
		printBMI(p.out, result)
	}

	hasConditions, err := p.confirm("Do you have any medical conditions?")
	if err != nil {
		return err
	}
	if !hasConditions {
		return ctrl.SetHasConditions("no")
	}
	if err := ctrl.SetHasConditions("yes"); err != nil {
		return err
	}

	id := fmt.Sprint(ctrl.Form().HealthInfo.MedicalConditions[0].ID)
	for {
		if err := promptCondition(ctrl, p, id); err != nil {
			return err
		}
		more, err := p.confirm("Add another condition?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if id, err = ctrl.AddCondition(); err != nil {
			fmt.Fprintln(p.out, err)
			return nil
		}
	}
}

func promptCondition(ctrl *wizard.Controller, p *prompter, id string) error {
	for _, f := range []struct {
		name, label string
	}{
		{"name", "Condition name"},
		{"description", "Notes"},
		{"startDate", "Start date (YYYY-MM-DD)"},
		{"endDate", "End date (YYYY-MM-DD)"},
	} {
		answer, err := p.ask(f.label, "")
		if err != nil {
			return err
		}
		if err := ctrl.UpdateCondition(id, f.name, answer); err != nil {
			return err
		}
	}

	file, err := p.ask("Attachment file (optional, kept locally)", "")
	if err != nil {
		return err
	}
	if file != "" {
		return ctrl.AttachConditionFile(id, file)
	}
	return nil
}

func promptGeneralInfo(ctrl *wizard.Controller, p *prompter) error {
	fmt.Fprintln(p.out, "Please input your guardian or emergency contact information")

	id := ""
	if contacts := ctrl.Form().GeneralInfo.Contacts; len(contacts) > 0 {
		id = fmt.Sprint(contacts[len(contacts)-1].ID)
	}
	for {
		for _, f := range []struct {
			name, label string
		}{
			{"name", "Full name"},
			{"relationship", "Relationship"},
			{"address", "Address"},
			{"phone", "Phone"},
		} {
			answer, err := p.ask(f.label, "")
			if err != nil {
				return err
			}
			if err := ctrl.UpdateContact(id, f.name, answer); err != nil {
				return err
			}
		}
		if id == "" {
			id = fmt.Sprint(ctrl.Form().GeneralInfo.Contacts[0].ID)
		}

		more, err := p.confirm("Add another contact?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		id = ctrl.AddContact()
	}
}

func promptTerms(ctrl *wizard.Controller, p *prompter) error {
	fmt.Fprintln(p.out, "Please read carefully before proceeding.")
	fmt.Fprintln(p.out, "By purchasing access you agree to a ONE-TIME PAYMENT. No refund policy applies.")

	read, err := p.confirm("Have you read the full Terms & Agreement?")
	if err != nil {
		return err
	}
	if read && !ctrl.TermsRead() {
		ctrl.MarkTermsRead()
	}

	checks := ctrl.TermsChecks()
	for _, item := range wizard.TermsChecklist {
		agree, err := p.confirm(item.Label)
		if err != nil {
			return err
		}
		if agree != checks[item.Key] {
			if err := ctrl.ToggleTermsCheck(item.Key); err != nil {
				return err
			}
		}
	}
	return nil
}

func printBMI(out io.Writer, r bmi.Result) {
	fmt.Fprintf(out, "BMI: %s (%s)\n", r.Value, r.Category)
	fmt.Fprintf(out, "Healthy BMI range: %s\n", r.HealthyRange)
	fmt.Fprintf(out, "Healthy weight: %s\n", r.HealthyWeightRange)
	fmt.Fprintf(out, "BMI Prime: %s\n", r.BMIPrime)
	fmt.Fprintf(out, "Ponderal Index: %s\n", r.PonderalIndex)
}
