package delivery

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when attempting to use an
// improperly initialized Contact.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact holds the name and phone number of a sending or receiving
// party. Receiver contact details stay sender-editable until pickup;
// sender details are fixed at creation.
type Contact struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewContact creates a Contact. Both name and phone are required.
func NewContact(name string, phone string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(contact.setName(name), contact.setPhone(phone)); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate checks that the Contact was created via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact's phone number.
func (c Contact) Phone() string {
	return c.phone
}

func (c *Contact) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
