package addressbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
)

// newRecord creates a record with the given name and phones or fails the test.
func newRecord(t *testing.T, name string, phones ...string) *model.Record {
	t.Helper()
	record, err := model.NewRecord(name)
	require.NoError(t, err)
	for _, phone := range phones {
		require.NoError(t, record.AddPhone(phone))
	}
	return record
}

// names returns the names of the records in the order of the address book.
func names(book *AddressBook) []string {
	result := []string{}
	for _, record := range book.All() {
		result = append(result, record.Name())
	}
	return result
}

// TestNewBookIsEmpty expects that a fresh address book has no records.
func TestNewBookIsEmpty(t *testing.T) {
	book := New()
	assert.Empty(t, book.All())
	assert.NotNil(t, book.All())
	assert.Equal(t, 0, book.Len())
	assert.Nil(t, book.Find("Ann"))
}

// TestAddRecordKeepsInsertionOrder expects that All returns records in the order they were added.
func TestAddRecordKeepsInsertionOrder(t *testing.T) {
	book := New()
	book.AddRecord(newRecord(t, "Carla"))
	book.AddRecord(newRecord(t, "Aaron"))
	book.AddRecord(newRecord(t, "Berta"))
	assert.Equal(t, []string{"Carla", "Aaron", "Berta"}, names(book))
	assert.Equal(t, 3, book.Len())
}

// TestAddRecordReplacesWholeRecord expects last-write-wins semantics. The replaced record keeps
// its position in the book.
func TestAddRecordReplacesWholeRecord(t *testing.T) {
	book := New()
	first := newRecord(t, "Ann", "1111111111")
	require.NoError(t, first.AddBirthday("12.06.1990"))
	book.AddRecord(first)
	book.AddRecord(newRecord(t, "Bob"))

	second := newRecord(t, "Ann", "2222222222")
	book.AddRecord(second)

	found := book.Find("Ann")
	assert.Same(t, second, found)
	assert.Equal(t, "Contact name: Ann, phones: 2222222222", found.String())
	assert.Equal(t, []string{"Ann", "Bob"}, names(book))
}

// TestDelete expects that deleting removes the record and that unknown names are ignored.
func TestDelete(t *testing.T) {
	book := New()
	book.AddRecord(newRecord(t, "Ann"))
	book.AddRecord(newRecord(t, "Bob"))
	book.AddRecord(newRecord(t, "Cid"))

	assert.False(t, book.Delete("Nobody"))
	assert.True(t, book.Delete("Bob"))
	assert.Nil(t, book.Find("Bob"))
	assert.Equal(t, []string{"Ann", "Cid"}, names(book))

	book.AddRecord(newRecord(t, "Bob"))
	assert.Equal(t, []string{"Ann", "Cid", "Bob"}, names(book))
}

// TestAddContactCreatesRecord expects that the first phone for a name creates the record.
func TestAddContactCreatesRecord(t *testing.T) {
	book := New()
	record, created, err := book.AddContact("Ann", "1111111111")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Same(t, record, book.Find("Ann"))
	assert.Equal(t, "Contact name: Ann, phones: 1111111111", record.String())
}

// TestAddContactUpdatesRecord expects that further phones are appended to the existing record
// instead of replacing it.
func TestAddContactUpdatesRecord(t *testing.T) {
	book := New()
	_, _, err := book.AddContact("Ann", "1111111111")
	require.NoError(t, err)
	require.NoError(t, book.Find("Ann").AddBirthday("12.06.1990"))

	record, created, err := book.AddContact("Ann", "2222222222")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Contact name: Ann, phones: 1111111111; 2222222222, Birthday: 12.06.1990", record.String())
	assert.Equal(t, 1, book.Len())
}

// TestAddContactInvalid expects that neither an invalid phone nor an empty name creates a record.
func TestAddContactInvalid(t *testing.T) {
	book := New()
	_, _, err := book.AddContact("Ann", "123")
	assert.ErrorIs(t, err, model.ErrInvalidPhone)
	_, _, err = book.AddContact(" ", "1111111111")
	assert.ErrorIs(t, err, model.ErrEmptyName)
	assert.Equal(t, 0, book.Len())
}
