package domain

import (
	"errors"
	"regexp"
)

// Registration drives the three-step sign-up sequence. Steps only advance
// forward after the current step validates; the only backward transitions are
// explicit Back calls. Validation reports one error per violated rule
// category, never per field, and a failing step never partially advances.

type RegistrationStep int

const (
	StepPersonalInfo RegistrationStep = iota + 1
	StepSecurity
	StepVerification
)

const MaxDocumentSize = 5 << 20 // 5 MB

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^0\d{10}$`)
	nationalIDPattern = regexp.MustCompile(`^\d{11}$`)
)

var (
	ErrFieldsMissing     = errors.New("please fill all fields")
	ErrEmailInvalid      = errors.New("please enter a valid email")
	ErrPhoneInvalid      = errors.New("please enter a valid phone number")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrNationalIDInvalid = errors.New("national ID must be 11 digits")
	ErrDocumentMissing   = errors.New("please attach a verification document")
	ErrDocumentTooLarge  = errors.New("document size must be less than 5MB")
)

// Document is a locally-selected verification file, size-checked before any
// upload is attempted.
type Document struct {
	Name string
	Size int64
}

type Registration struct {
	step RegistrationStep

	FullName string
	Email    string
	Phone    string

	Password        string
	ConfirmPassword string

	NationalID  string
	Institution string
	Document    *Document
}

func NewRegistration() *Registration {
	return &Registration{step: StepPersonalInfo}
}

func (r *Registration) Step() RegistrationStep {
	return r.step
}

// Next validates the current step and advances on success. On failure the
// step is unchanged and every violated rule category is returned.
func (r *Registration) Next() []error {
	var errs []error
	switch r.step {
	case StepPersonalInfo:
		errs = r.validatePersonalInfo()
	case StepSecurity:
		errs = r.validateSecurity()
	case StepVerification:
		return r.validateVerification()
	}

	if len(errs) > 0 {
		return errs
	}

	r.step++
	return nil
}

// Back returns to the previous step, keeping all entered data.
func (r *Registration) Back() {
	if r.step > StepPersonalInfo {
		r.step--
	}
}

// Complete reports whether every step validates, gating the final submit.
func (r *Registration) Complete() bool {
	return r.step == StepVerification && len(r.validateVerification()) == 0
}

func (r *Registration) validatePersonalInfo() []error {
	var errs []error
	if r.FullName == "" || r.Email == "" || r.Phone == "" {
		errs = append(errs, ErrFieldsMissing)
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		errs = append(errs, ErrEmailInvalid)
	}
	if r.Phone != "" && !phonePattern.MatchString(r.Phone) {
		errs = append(errs, ErrPhoneInvalid)
	}
	return errs
}

func (r *Registration) validateSecurity() []error {
	var errs []error
	if r.Password == "" || r.ConfirmPassword == "" {
		errs = append(errs, ErrFieldsMissing)
	}
	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, ErrPasswordTooShort)
	}
	if r.Password != "" && r.ConfirmPassword != "" && r.Password != r.ConfirmPassword {
		errs = append(errs, ErrPasswordMismatch)
	}
	return errs
}

func (r *Registration) validateVerification() []error {
	var errs []error
	if r.NationalID == "" || r.Institution == "" {
		errs = append(errs, ErrFieldsMissing)
	}
	if r.NationalID != "" && !nationalIDPattern.MatchString(r.NationalID) {
		errs = append(errs, ErrNationalIDInvalid)
	}
	switch {
	case r.Document == nil:
		errs = append(errs, ErrDocumentMissing)
	case r.Document.Size > MaxDocumentSize:
		errs = append(errs, ErrDocumentTooLarge)
	}
	return errs
}
