package repository

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"person_registry/internal/models"
	"person_registry/internal/storage"
)

// Required-field checks per entity. These run on Add and Update; anything
// stricter than shape checks belongs to the caller.

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{3,19}$`)

func validatePerson(p *models.Person) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", models.ErrValidation)
	}
	if !phonePattern.MatchString(p.PhoneNumber) {
		return fmt.Errorf("%w: phone number %q is malformed", models.ErrValidation, p.PhoneNumber)
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return fmt.Errorf("%w: email %q is malformed", models.ErrValidation, p.Email)
		}
	}
	return nil
}

func validateUpload(u *models.Upload) error {
	if strings.TrimSpace(u.FileName) == "" {
		return fmt.Errorf("%w: file name is required", models.ErrValidation)
	}
	return nil
}

func validateUser(u *models.User) error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", models.ErrValidation)
	}
	return nil
}

// Field extractors for the in-memory stores, keyed by column name to match
// the Bun stores.

func personFields() storage.FieldSet[models.Person] {
	return storage.FieldSet[models.Person]{
		"first_name":   func(p *models.Person) string { return p.FirstName },
		"last_name":    func(p *models.Person) string { return p.LastName },
		"phone_number": func(p *models.Person) string { return p.PhoneNumber },
		"email":        func(p *models.Person) string { return p.Email },
	}
}

func uploadFields() storage.FieldSet[models.Upload] {
	return storage.FieldSet[models.Upload]{
		"file_name": func(u *models.Upload) string { return u.FileName },
	}
}

func userFields() storage.FieldSet[models.User] {
	return storage.FieldSet[models.User]{
		"username":   func(u *models.User) string { return u.Username },
		"first_name": func(u *models.User) string { return u.FirstName },
		"last_name":  func(u *models.User) string { return u.LastName },
	}
}
