package wizard

import (
	"strings"

	"gym-portal/internal/delivery/dto"
)

// Step is one screen of the signup wizard. Validate returns a *StepError
// when the step's section is not ready to advance.
type Step interface {
	Number() int
	Path() string
	Label() string
	Validate(form *dto.SignupRequest) error
}

const (
	PathPersonalInfo = "personalInfo"
	PathHealthInfo   = "healthInfo"
	PathGeneralInfo  = "generalInfo"
	PathTerms        = "terms"
)

const (
	MsgWeightHeightRequired = "Please enter weight and height."
	MsgConditionNames       = "Please fill out all medical condition names."
	MsgContactRequired      = "Please provide at least one guardian/contact."
)

// StepError is a blocking validation failure shown to the member.
type StepError struct {
	Step    int
	Message string
}

func (e *StepError) Error() string { return e.Message }

// Steps returns the wizard steps in order.
func Steps() []Step {
	return []Step{
		personalInfoStep{},
		healthInfoStep{},
		generalInfoStep{},
		termsStep{},
	}
}

type personalInfoStep struct{}

func (personalInfoStep) Number() int   { return 1 }
func (personalInfoStep) Path() string  { return PathPersonalInfo }
func (personalInfoStep) Label() string { return "Personal Information" }

func (s personalInfoStep) Validate(form *dto.SignupRequest) error {
	p := form.PersonalInfo
	required := []struct {
		value, label string
	}{
		{p.Username, "username"},
		{p.Email, "email"},
		{p.Password, "password"},
		{p.RetypePassword, "retyped password"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &StepError{Step: s.Number(), Message: "Please enter your " + r.label + "."}
		}
	}
	return nil
}

type healthInfoStep struct{}

func (healthInfoStep) Number() int   { return 2 }
func (healthInfoStep) Path() string  { return PathHealthInfo }
func (healthInfoStep) Label() string { return "Health Information" }

func (s healthInfoStep) Validate(form *dto.SignupRequest) error {
	h := form.HealthInfo
	if strings.TrimSpace(h.Weight) == "" || strings.TrimSpace(h.Height) == "" {
		return &StepError{Step: s.Number(), Message: MsgWeightHeightRequired}
	}
	if h.HasConditions == "yes" {
		for _, c := range h.MedicalConditions {
			if strings.TrimSpace(c.Name) == "" {
				return &StepError{Step: s.Number(), Message: MsgConditionNames}
			}
		}
	}
	return nil
}

type generalInfoStep struct{}

func (generalInfoStep) Number() int   { return 3 }
func (generalInfoStep) Path() string  { return PathGeneralInfo }
func (generalInfoStep) Label() string { return "General Information" }

func (s generalInfoStep) Validate(form *dto.SignupRequest) error {
	for _, c := range form.GeneralInfo.Contacts {
		if !c.Blank() {
			return nil
		}
	}
	return &StepError{Step: s.Number(), Message: MsgContactRequired}
}

type termsStep struct{}

func (termsStep) Number() int                      { return 4 }
func (termsStep) Path() string                     { return PathTerms }
func (termsStep) Label() string                    { return "Terms & Agreements" }
func (termsStep) Validate(*dto.SignupRequest) error { return nil }
