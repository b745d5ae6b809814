package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SignupRequest is the wizard's form object, posted as-is on submit.
type SignupRequest struct {
	PersonalInfo  PersonalInfoForm `json:"personalInfo"`
	HealthInfo    HealthInfoForm   `json:"healthInfo"`
	GeneralInfo   GeneralInfoForm  `json:"generalInfo"`
	TermsAccepted TermsFlag        `json:"termsAccepted"`

	// Flat payload accepted by the single-table signup endpoint.
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type PersonalInfoForm struct {
	Username       string `json:"username"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Password       string `json:"password"`
	RetypePassword string `json:"retypePassword"`
	FirstName      string `json:"firstName,omitempty" validate:"max=100"`
	LastName       string `json:"lastName,omitempty" validate:"max=100"`
	Phone          string `json:"phone" validate:"max=30"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	Nationality    string `json:"nationality" validate:"max=100"`
	Birthdate      string `json:"birthdate"`
	FitnessType    string `json:"fitnessType" validate:"max=100"`
	FitnessGoal    string `json:"fitnessGoal" validate:"max=255"`
}

type HealthInfoForm struct {
	Weight            string                 `json:"weight"`
	Height            string                 `json:"height"`
	WeightUnit        string                 `json:"weightUnit,omitempty" validate:"omitempty,oneof=kg lbs"`
	HeightUnit        string                 `json:"heightUnit,omitempty" validate:"omitempty,oneof=cm m in ft"`
	BMI               string                 `json:"bmi"`
	HasConditions     string                 `json:"hasConditions" validate:"omitempty,oneof=yes no"`
	MedicalConditions []MedicalConditionForm `json:"medicalConditions" validate:"max=10,dive"`
}

type MedicalConditionForm struct {
	ID          any    `json:"id,omitempty"`
	Name        string `json:"name" validate:"max=255"`
	Description string `json:"description,omitempty"`
	// Suggestion is the notes field name used by older clients.
	Suggestion string `json:"suggestion,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`

	// Attachment is the local file name picked in the wizard. It is never
	// serialized, uploaded or stored.
	Attachment string `json:"-"`
}

type GeneralInfoForm struct {
	Contacts []ContactForm `json:"contacts" validate:"dive"`
}

type ContactForm struct {
	ID           any    `json:"id,omitempty"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// Blank reports whether every field of the contact is empty or whitespace.
func (c ContactForm) Blank() bool {
	return strings.TrimSpace(c.Name) == "" &&
		strings.TrimSpace(c.Relationship) == "" &&
		strings.TrimSpace(c.Address) == "" &&
		strings.TrimSpace(c.Phone) == ""
}

// Notes returns the description, falling back to the legacy suggestion field.
func (c MedicalConditionForm) Notes() string {
	if d := strings.TrimSpace(c.Description); d != "" {
		return d
	}
	return strings.TrimSpace(c.Suggestion)
}

// TermsFlag decodes either a JSON boolean or the nested object
// {"termsAccepted": bool} sent by clients that merged the flag as a section.
type TermsFlag bool

func (f *TermsFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var nested struct {
			TermsAccepted bool `json:"termsAccepted"`
		}
		if err := json.Unmarshal(data, &nested); err != nil {
			return err
		}
		*f = TermsFlag(nested.TermsAccepted)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*f = TermsFlag(b)
	return nil
}

// Normalize trims identity fields, lowercases the email and lifts the flat
// legacy credentials into personalInfo when the sectioned ones are absent.
func (r *SignupRequest) Normalize() {
	p := &r.PersonalInfo
	if strings.TrimSpace(p.Username) == "" {
		p.Username = r.Username
	}
	if strings.TrimSpace(p.Email) == "" {
		p.Email = r.Email
	}
	if p.Password == "" {
		p.Password = r.Password
	}
	r.Username, r.Email, r.Password = "", "", ""

	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Gender = strings.ToLower(strings.TrimSpace(p.Gender))

	h := &r.HealthInfo
	h.Weight = strings.TrimSpace(h.Weight)
	h.Height = strings.TrimSpace(h.Height)
	h.HasConditions = strings.ToLower(strings.TrimSpace(h.HasConditions))
}

// HasCredentials reports whether username, email and password are all present.
func (r *SignupRequest) HasCredentials() bool {
	return r.PersonalInfo.Username != "" && r.PersonalInfo.Email != "" && r.PersonalInfo.Password != ""
}

type SignupResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
