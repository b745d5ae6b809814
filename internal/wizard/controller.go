package wizard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gym-portal/internal/delivery/dto"
	"gym-portal/pkg/bmi"

	"github.com/google/uuid"
)

const (
	SectionPersonalInfo  = "personalInfo"
	SectionHealthInfo    = "healthInfo"
	SectionGeneralInfo   = "generalInfo"
	SectionTermsAccepted = "termsAccepted"

	MaxConditions = 10
)

var (
	ErrUnknownField      = errors.New("unknown form field")
	ErrInvalidValue      = errors.New("invalid field value")
	ErrReadOnlyField     = errors.New("field is read-only")
	ErrConditionLimit    = errors.New("at most 10 medical conditions can be added")
	ErrLastCondition     = errors.New("the last medical condition cannot be removed")
	ErrConditionNotFound = errors.New("medical condition not found")
	ErrLastContact       = errors.New("the last contact cannot be removed")
	ErrContactNotFound   = errors.New("contact not found")
	ErrNotFinalStep      = errors.New("the form can only be submitted from the last step")
	ErrTermsNotAccepted  = errors.New("terms must be accepted before submitting")
)

// FieldEvent is a single input change. Checkbox events carry Checked and
// ignore Value.
type FieldEvent struct {
	Name    string
	Value   any
	Type    string
	Checked bool
}

// TermsItem is one line of the terms checklist.
type TermsItem struct {
	Key   string
	Label string
}

var TermsChecklist = []TermsItem{
	{Key: "read", Label: "I have read the Terms & Agreement."},
	{Key: "oneTime", Label: "I understand this is a ONE-TIME PAYMENT."},
	{Key: "noRefund", Label: "I understand there is no refund."},
	{Key: "age", Label: "I am of legal age or have guardian consent."},
	{Key: "privacy", Label: "I consent to the processing of personal data."},
}

// Controller owns the signup form and the current step. It is not safe for
// concurrent use; one member drives one controller.
type Controller struct {
	client Submitter
	steps  []Step
	newID  func() string

	form dto.SignupRequest
	step int

	weightUnit bmi.WeightUnit
	heightUnit bmi.HeightUnit
	bmiResult  bmi.Result
	bmiOK      bool

	termsRead   bool
	termsChecks map[string]bool
}

func NewController(client Submitter) *Controller {
	c := &Controller{
		client: client,
		steps:  Steps(),
		newID:  uuid.NewString,
	}
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.form = dto.SignupRequest{
		HealthInfo: dto.HealthInfoForm{
			WeightUnit:        string(bmi.Kilograms),
			HeightUnit:        string(bmi.Centimeters),
			MedicalConditions: []dto.MedicalConditionForm{},
		},
		GeneralInfo: dto.GeneralInfoForm{Contacts: []dto.ContactForm{}},
	}
	c.step = 1
	c.weightUnit = bmi.Kilograms
	c.heightUnit = bmi.Centimeters
	c.bmiResult, c.bmiOK = bmi.Result{}, false
	c.termsRead = false
	c.termsChecks = make(map[string]bool, len(TermsChecklist))
	for _, item := range TermsChecklist {
		c.termsChecks[item.Key] = false
	}
}

// Form returns a snapshot of the form object.
func (c *Controller) Form() dto.SignupRequest {
	form := c.form
	form.HealthInfo.MedicalConditions = append([]dto.MedicalConditionForm(nil), c.form.HealthInfo.MedicalConditions...)
	form.GeneralInfo.Contacts = append([]dto.ContactForm(nil), c.form.GeneralInfo.Contacts...)
	return form
}

func (c *Controller) Step() int { return c.step }

func (c *Controller) Path() string { return c.steps[c.step-1].Path() }

func (c *Controller) Label() string { return c.steps[c.step-1].Label() }

func (c *Controller) Steps() []Step { return c.steps }

// Navigate moves to the step shown at a path segment. Anything that is not
// a step path shows the first step.
func (c *Controller) Navigate(path string) {
	segment := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		segment = path[i+1:]
	}
	for _, s := range c.steps {
		if s.Path() == segment {
			c.step = s.Number()
			return
		}
	}
	c.step = 1
}

// ValidateStep runs the validator of step n (1-based).
func (c *Controller) ValidateStep(n int) error {
	if n < 1 || n > len(c.steps) {
		return fmt.Errorf("step %d out of range", n)
	}
	return c.steps[n-1].Validate(&c.form)
}

// GoNext advances one step once the current step validates. It stays put
// on the last step.
func (c *Controller) GoNext() error {
	if err := c.ValidateStep(c.step); err != nil {
		return err
	}
	if c.step < len(c.steps) {
		c.step++
	}
	return nil
}

func (c *Controller) GoPrev() {
	if c.step > 1 {
		c.step--
	}
}

var personalFields = map[string]func(*dto.PersonalInfoForm) *string{
	"username":       func(p *dto.PersonalInfoForm) *string { return &p.Username },
	"email":          func(p *dto.PersonalInfoForm) *string { return &p.Email },
	"password":       func(p *dto.PersonalInfoForm) *string { return &p.Password },
	"retypePassword": func(p *dto.PersonalInfoForm) *string { return &p.RetypePassword },
	"firstName":      func(p *dto.PersonalInfoForm) *string { return &p.FirstName },
	"lastName":       func(p *dto.PersonalInfoForm) *string { return &p.LastName },
	"phone":          func(p *dto.PersonalInfoForm) *string { return &p.Phone },
	"gender":         func(p *dto.PersonalInfoForm) *string { return &p.Gender },
	"nationality":    func(p *dto.PersonalInfoForm) *string { return &p.Nationality },
	"birthdate":      func(p *dto.PersonalInfoForm) *string { return &p.Birthdate },
	"fitnessType":    func(p *dto.PersonalInfoForm) *string { return &p.FitnessType },
	"fitnessGoal":    func(p *dto.PersonalInfoForm) *string { return &p.FitnessGoal },
}

// HandleChange returns the change handler for one form section. A failed
// change leaves the form untouched.
func (c *Controller) HandleChange(section string) func(FieldEvent) error {
	return func(ev FieldEvent) error {
		switch section {
		case SectionPersonalInfo:
			return c.changePersonal(ev)
		case SectionHealthInfo:
			return c.changeHealth(ev)
		case SectionGeneralInfo:
			return c.changeGeneral(ev)
		case SectionTermsAccepted:
			if ev.Name != SectionTermsAccepted {
				return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, ev.Name)
			}
			accepted, err := boolValue(ev)
			if err != nil {
				return err
			}
			c.form.TermsAccepted = dto.TermsFlag(accepted)
			return nil
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, section)
		}
	}
}

func (c *Controller) changePersonal(ev FieldEvent) error {
	field, ok := personalFields[ev.Name]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, SectionPersonalInfo, ev.Name)
	}
	v, err := stringValue(ev)
	if err != nil {
		return err
	}
	*field(&c.form.PersonalInfo) = v
	return nil
}

func (c *Controller) changeHealth(ev FieldEvent) error {
	switch ev.Name {
	case "weight", "height":
		v, err := stringValue(ev)
		if err != nil {
			return err
		}
		if ev.Name == "weight" {
			c.form.HealthInfo.Weight = v
		} else {
			c.form.HealthInfo.Height = v
		}
		c.recomputeBMI()
		return nil
	case "weightUnit":
		v, err := stringValue(ev)
		if err != nil {
			return err
		}
		return c.SetWeightUnit(v)
	case "heightUnit":
		v, err := stringValue(ev)
		if err != nil {
			return err
		}
		return c.SetHeightUnit(v)
	case "hasConditions":
		v, err := stringValue(ev)
		if err != nil {
			return err
		}
		return c.SetHasConditions(v)
	case "medicalConditions":
		conditions, ok := ev.Value.([]dto.MedicalConditionForm)
		if !ok || len(conditions) > MaxConditions {
			return fmt.Errorf("%w: %s.%s", ErrInvalidValue, SectionHealthInfo, ev.Name)
		}
		c.form.HealthInfo.MedicalConditions = append([]dto.MedicalConditionForm{}, conditions...)
		return nil
	case "bmi":
		return fmt.Errorf("%w: %s.%s", ErrReadOnlyField, SectionHealthInfo, ev.Name)
	default:
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, SectionHealthInfo, ev.Name)
	}
}

func (c *Controller) changeGeneral(ev FieldEvent) error {
	if ev.Name != "contacts" {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, SectionGeneralInfo, ev.Name)
	}
	contacts, ok := ev.Value.([]dto.ContactForm)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrInvalidValue, SectionGeneralInfo, ev.Name)
	}
	c.form.GeneralInfo.Contacts = append([]dto.ContactForm{}, contacts...)
	return nil
}

func stringValue(ev FieldEvent) (string, error) {
	if ev.Type == "checkbox" {
		return strconv.FormatBool(ev.Checked), nil
	}
	switch v := ev.Value.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int64, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidValue, ev.Name)
	}
}

func boolValue(ev FieldEvent) (bool, error) {
	if ev.Type == "checkbox" {
		return ev.Checked, nil
	}
	switch v := ev.Value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s", ErrInvalidValue, ev.Name)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidValue, ev.Name)
	}
}

func (c *Controller) SetWeightUnit(unit string) error {
	switch bmi.WeightUnit(unit) {
	case bmi.Kilograms, bmi.Pounds:
	default:
		return fmt.Errorf("%w: weight unit %q", ErrInvalidValue, unit)
	}
	c.weightUnit = bmi.WeightUnit(unit)
	c.form.HealthInfo.WeightUnit = unit
	c.recomputeBMI()
	return nil
}

func (c *Controller) SetHeightUnit(unit string) error {
	switch bmi.HeightUnit(unit) {
	case bmi.Centimeters, bmi.Meters, bmi.Inches, bmi.Feet:
	default:
		return fmt.Errorf("%w: height unit %q", ErrInvalidValue, unit)
	}
	c.heightUnit = bmi.HeightUnit(unit)
	c.form.HealthInfo.HeightUnit = unit
	c.recomputeBMI()
	return nil
}

// recomputeBMI treats unparsable input as zero, which clears the BMI.
func (c *Controller) recomputeBMI() {
	weight, _ := strconv.ParseFloat(strings.TrimSpace(c.form.HealthInfo.Weight), 64)
	height, _ := strconv.ParseFloat(strings.TrimSpace(c.form.HealthInfo.Height), 64)

	c.bmiResult, c.bmiOK = bmi.Calculate(weight, c.weightUnit, height, c.heightUnit)
	if c.bmiOK {
		c.form.HealthInfo.BMI = c.bmiResult.Value
	} else {
		c.bmiResult = bmi.Result{}
		c.form.HealthInfo.BMI = ""
	}
}

// BMIDetails returns the derived descriptors for the current measurements.
func (c *Controller) BMIDetails() (bmi.Result, bool) {
	return c.bmiResult, c.bmiOK
}

// SetHasConditions answers the conditions question. "yes" starts a fresh
// list with one blank entry and "no" clears it.
func (c *Controller) SetHasConditions(answer string) error {
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch answer {
	case "yes":
		c.form.HealthInfo.MedicalConditions = []dto.MedicalConditionForm{{ID: c.newID()}}
	case "no":
		c.form.HealthInfo.MedicalConditions = []dto.MedicalConditionForm{}
	default:
		return fmt.Errorf("%w: hasConditions %q", ErrInvalidValue, answer)
	}
	c.form.HealthInfo.HasConditions = answer
	return nil
}

func (c *Controller) AddCondition() (string, error) {
	if len(c.form.HealthInfo.MedicalConditions) >= MaxConditions {
		return "", ErrConditionLimit
	}
	id := c.newID()
	c.form.HealthInfo.MedicalConditions = append(c.form.HealthInfo.MedicalConditions, dto.MedicalConditionForm{ID: id})
	return id, nil
}

func (c *Controller) DeleteCondition(id string) error {
	conditions := c.form.HealthInfo.MedicalConditions
	i := indexByID(len(conditions), func(i int) any { return conditions[i].ID }, id)
	if i < 0 {
		return ErrConditionNotFound
	}
	if len(conditions) <= 1 {
		return ErrLastCondition
	}
	c.form.HealthInfo.MedicalConditions = append(conditions[:i:i], conditions[i+1:]...)
	return nil
}

func (c *Controller) UpdateCondition(id, field, value string) error {
	conditions := c.form.HealthInfo.MedicalConditions
	i := indexByID(len(conditions), func(i int) any { return conditions[i].ID }, id)
	if i < 0 {
		return ErrConditionNotFound
	}

	cond := &conditions[i]
	switch field {
	case "name":
		cond.Name = value
	case "description":
		cond.Description = value
	case "suggestion":
		cond.Suggestion = value
	case "startDate":
		cond.StartDate = value
	case "endDate":
		cond.EndDate = value
	default:
		return fmt.Errorf("%w: medicalConditions.%s", ErrUnknownField, field)
	}
	return nil
}

// AttachConditionFile records the picked file's name. The file itself is
// never read or sent.
func (c *Controller) AttachConditionFile(id, path string) error {
	conditions := c.form.HealthInfo.MedicalConditions
	i := indexByID(len(conditions), func(i int) any { return conditions[i].ID }, id)
	if i < 0 {
		return ErrConditionNotFound
	}
	conditions[i].Attachment = filepath.Base(path)
	return nil
}

// Contacts returns the contacts as shown, including the default blank one
// when none has been entered.
func (c *Controller) Contacts() []dto.ContactForm {
	if len(c.form.GeneralInfo.Contacts) == 0 {
		return []dto.ContactForm{{}}
	}
	return append([]dto.ContactForm(nil), c.form.GeneralInfo.Contacts...)
}

// contacts materializes the default blank contact before the first edit.
func (c *Controller) contacts() []dto.ContactForm {
	if len(c.form.GeneralInfo.Contacts) == 0 {
		c.form.GeneralInfo.Contacts = []dto.ContactForm{{ID: c.newID()}}
	}
	return c.form.GeneralInfo.Contacts
}

func (c *Controller) AddContact() string {
	id := c.newID()
	c.form.GeneralInfo.Contacts = append(c.contacts(), dto.ContactForm{ID: id})
	return id
}

func (c *Controller) DeleteContact(id string) error {
	contacts := c.contacts()
	i := indexByID(len(contacts), func(i int) any { return contacts[i].ID }, id)
	if i < 0 {
		return ErrContactNotFound
	}
	if len(contacts) <= 1 {
		return ErrLastContact
	}
	c.form.GeneralInfo.Contacts = append(contacts[:i:i], contacts[i+1:]...)
	return nil
}

// UpdateContact edits one contact. An empty id addresses the default
// contact shown before anything was entered.
func (c *Controller) UpdateContact(id, field, value string) error {
	contacts := c.contacts()
	i := 0
	if id != "" {
		i = indexByID(len(contacts), func(i int) any { return contacts[i].ID }, id)
	}
	if i < 0 {
		return ErrContactNotFound
	}

	contact := &contacts[i]
	switch field {
	case "name":
		contact.Name = value
	case "relationship":
		contact.Relationship = value
	case "address":
		contact.Address = value
	case "phone":
		contact.Phone = value
	default:
		return fmt.Errorf("%w: contacts.%s", ErrUnknownField, field)
	}
	return nil
}

func indexByID(n int, idAt func(int) any, id string) int {
	for i := 0; i < n; i++ {
		if v := idAt(i); v != nil && fmt.Sprint(v) == id {
			return i
		}
	}
	return -1
}

// MarkTermsRead records that the terms text was scrolled to the end.
func (c *Controller) MarkTermsRead() {
	c.termsRead = true
	c.syncTerms()
}

func (c *Controller) ToggleTermsCheck(key string) error {
	checked, ok := c.termsChecks[key]
	if !ok {
		return fmt.Errorf("%w: terms.%s", ErrUnknownField, key)
	}
	c.termsChecks[key] = !checked
	c.syncTerms()
	return nil
}

func (c *Controller) TermsChecks() map[string]bool {
	out := make(map[string]bool, len(c.termsChecks))
	for k, v := range c.termsChecks {
		out[k] = v
	}
	return out
}

func (c *Controller) TermsRead() bool { return c.termsRead }

func (c *Controller) syncTerms() {
	accepted := c.termsRead
	for _, checked := range c.termsChecks {
		accepted = accepted && checked
	}
	if bool(c.form.TermsAccepted) != accepted {
		// Only fails on an unknown section, which cannot happen here.
		_ = c.HandleChange(SectionTermsAccepted)(FieldEvent{
			Name:    SectionTermsAccepted,
			Type:    "checkbox",
			Checked: accepted,
		})
	}
}

// CanSubmit reports whether the submit action is enabled.
func (c *Controller) CanSubmit() bool {
	return c.step == len(c.steps) && bool(c.form.TermsAccepted)
}

// Submit sends the form in one request. On success the wizard starts over
// with an empty form; on failure the form is kept for another attempt.
func (c *Controller) Submit(ctx context.Context) (*dto.SignupResponse, error) {
	if c.step != len(c.steps) {
		return nil, ErrNotFinalStep
	}
	if !c.form.TermsAccepted {
		return nil, ErrTermsNotAccepted
	}

	form := c.Form()
	resp, err := c.client.Submit(ctx, &form)
	if err != nil {
		return nil, err
	}

	c.reset()
	return resp, nil
}
