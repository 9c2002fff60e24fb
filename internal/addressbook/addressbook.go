// Package addressbook holds all contact records of a session in memory and computes who has to be
// congratulated within the next week.
package addressbook

import "gitlab.com/dirk.krummacker/contacts-assistant/internal/model"

// AddressBook maps contact names to records and remembers the order in which names were first
// added. It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*model.Record
	order   []string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*model.Record)}
}

// AddRecord stores the record under its name. An existing record with the same name is replaced
// as a whole but keeps its position.
func (b *AddressBook) AddRecord(record *model.Record) {
	name := record.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under name, or nil.
func (b *AddressBook) Find(name string) *model.Record {
	return b.records[name]
}

// Delete removes the record stored under name and reports whether there was one.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns the records in insertion order.
func (b *AddressBook) All() []*model.Record {
	records := make([]*model.Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// AddContact adds phone to the record called name. If there is no such record yet, a new one is
// created and stored. The phone is validated first, so an invalid number never leaves an empty
// record behind.
func (b *AddressBook) AddContact(name, phone string) (record *model.Record, created bool, err error) {
	if _, err = model.NewPhone(phone); err != nil {
		return nil, false, err
	}
	record = b.Find(name)
	if record == nil {
		record, err = model.NewRecord(name)
		if err != nil {
			return nil, false, err
		}
		b.AddRecord(record)
		created = true
	}
	if err = record.AddPhone(phone); err != nil {
		return nil, false, err
	}
	return record, created, nil
}
