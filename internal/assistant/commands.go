package assistant

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
)

// command runs one verb with its arguments. It returns the message for the user or an error that
// is shown prefixed with "Error: ".
type command func(a *Assistant, args []string) (string, error)

// commands maps every verb except hello, close and exit to its implementation.
var commands = map[string]command{
	"add":           addContact,
	"change":        changePhone,
	"phone":         showPhone,
	"remove-phone":  removePhone,
	"delete":        deleteContact,
	"all":           showAll,
	"add-birthday":  addBirthday,
	"show-birthday": showBirthday,
	"birthdays":     birthdays,
}

// addContact adds a phone number to a contact, creating the contact on first use.
//
//	> add Ann 0501234567
func addContact(a *Assistant, args []string) (string, error) {
	if len(args) < 2 {
		return "Invalid command. Please provide a name and a phone number after 'add'.", nil
	}
	_, created, err := a.book.AddContact(args[0], args[1])
	if err != nil {
		return "", err
	}
	if created {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

// changePhone replaces one phone number of a contact.
//
//	> change Ann 0501234567 0509876543
func changePhone(a *Assistant, args []string) (string, error) {
	if len(args) != 3 {
		return "Invalid command. Please provide name, old phone number, and new phone number after 'change'.", nil
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	record := a.book.Find(name)
	if record == nil {
		return notFound(name), nil
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		if errors.Is(err, model.ErrOldPhoneNotFound) {
			return fmt.Sprintf("Error: Old phone number %s not found for %s.", oldPhone, name), nil
		}
		return "", err
	}
	return fmt.Sprintf("Phone number updated for %s.", name), nil
}

// showPhone lists the phone numbers of a contact.
//
//	> phone Ann
func showPhone(a *Assistant, args []string) (string, error) {
	if len(args) != 1 {
		return "Invalid command. Please provide a name after 'phone'.", nil
	}
	name := args[0]
	record := a.book.Find(name)
	if record == nil {
		return notFound(name), nil
	}
	phones := record.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phone numbers.", name), nil
	}
	numbers := make([]string, 0, len(phones))
	for _, phone := range phones {
		numbers = append(numbers, phone.String())
	}
	return fmt.Sprintf("%s's phone number is %s.", name, strings.Join(numbers, ", ")), nil
}

// removePhone removes a phone number from a contact.
//
//	> remove-phone Ann 0501234567
func removePhone(a *Assistant, args []string) (string, error) {
	if len(args) != 2 {
		return "Invalid command. Please provide a name and a phone number after 'remove-phone'.", nil
	}
	name := args[0]
	record := a.book.Find(name)
	if record == nil {
		return notFound(name), nil
	}
	record.RemovePhone(args[1])
	return fmt.Sprintf("Phone number removed for %s.", name), nil
}

// deleteContact removes a contact from the address book.
//
//	> delete Ann
func deleteContact(a *Assistant, args []string) (string, error) {
	if len(args) != 1 {
		return "Invalid command. Please provide a name after 'delete'.", nil
	}
	name := args[0]
	if !a.book.Delete(name) {
		return notFound(name), nil
	}
	return fmt.Sprintf("Contact %s deleted.", name), nil
}

// showAll lists every contact in the order they were added.
//
//	> all
func showAll(a *Assistant, _ []string) (string, error) {
	records := a.book.All()
	if len(records) == 0 {
		return "Address book is empty.", nil
	}
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}

// addBirthday sets the birthday of a contact.
//
//	> add-birthday Ann 12.06.1990
func addBirthday(a *Assistant, args []string) (string, error) {
	if len(args) != 2 {
		return "Invalid command. Please provide a name and a birthday (DD.MM.YYYY) after 'add-birthday'.", nil
	}
	name := args[0]
	record := a.book.Find(name)
	if record == nil {
		return notFound(name), nil
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", name), nil
}

// showBirthday prints the birthday of a contact.
//
//	> show-birthday Ann
func showBirthday(a *Assistant, args []string) (string, error) {
	if len(args) != 1 {
		return "Invalid command. Please provide a name after 'show-birthday'.", nil
	}
	name := args[0]
	if record := a.book.Find(name); record != nil {
		if birthday, ok := record.Birthday(); ok {
			return fmt.Sprintf("%s's birthday is on %s.", name, birthday), nil
		}
	}
	return fmt.Sprintf("Contact %s not found or birthday not set.", name), nil
}

// birthdays lists who has to be congratulated within the next week.
//
//	> birthdays
func birthdays(a *Assistant, _ []string) (string, error) {
	greetings := a.book.UpcomingBirthdays(a.now())
	if len(greetings) == 0 {
		return "No birthdays in the next week.", nil
	}
	lines := make([]string, 0, len(greetings)+1)
	lines = append(lines, "Upcoming birthdays in the next week:")
	for _, greeting := range greetings {
		lines = append(lines, greeting.Name+": "+greeting.CongratulationDate)
	}
	return strings.Join(lines, "\n"), nil
}

func notFound(name string) string {
	return fmt.Sprintf("Contact %s not found.", name)
}
