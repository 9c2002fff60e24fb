package service

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
	dto "gitlab.com/dirk.krummacker/contacts-assistant/pkg/model"
	"go.uber.org/zap"
)

// server serves the REST API on top of an address book. The address book itself is not safe for
// concurrent use, so every handler holds mu while it touches the book or one of its records.
type server struct {
	mu        sync.Mutex
	book      *addressbook.AddressBook
	now       func() time.Time
	accessLog bool
}

// Option configures the REST API.
type Option func(*server)

// WithClock replaces the clock used when no explicit date is passed to /birthdays.
func WithClock(now func() time.Time) Option {
	return func(s *server) {
		s.now = now
	}
}

// WithAccessLog turns the structured access log on or off.
func WithAccessLog(enabled bool) Option {
	return func(s *server) {
		s.accessLog = enabled
	}
}

// SetupHttpRouter initializes the REST API router for book and registers all endpoints.
func SetupHttpRouter(book *addressbook.AddressBook, opts ...Option) *gin.Engine {
	s := &server{book: book, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if s.accessLog {
		router.Use(accessLog())
	}
	router.GET("/contacts", s.findContacts)
	router.POST("/contacts", s.createContact)
	router.GET("/contacts/:name", s.findContactByName)
	router.PUT("/contacts/:name", s.updateContactByName)
	router.DELETE("/contacts/:name", s.deleteContactByName)
	router.DELETE("/contacts/:name/phones/:phone", s.deletePhone)
	router.PUT("/contacts/:name/birthday", s.setBirthday)
	router.GET("/birthdays", s.findBirthdays)
	return router
}

// findContacts responds with the list of all contacts as JSON, in the order they were added.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts
func (s *server) findContacts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := make([]dto.Contact, 0, s.book.Len())
	for _, record := range s.book.All() {
		contacts = append(contacts, toContact(record))
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// createContact adds the phone number of the request's JSON to the named contact. The contact is
// created if it does not exist yet, in which case the response status is CREATED. An optional
// birthday is set as well; it is rejected if the contact already has one.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"name": "Ann", "phone": "0501234567", "birthday": "12.06.1990"}'
func (s *server) createContact(c *gin.Context) {
	var request dto.AddContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	var birthday *model.Birthday
	if request.Birthday != nil {
		parsed, err := model.NewBirthday(*request.Birthday)
		if err != nil {
			abortWithError(c, err)
			return
		}
		birthday = &parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Refuse a second birthday before anything is changed.
	if existing := s.book.Find(request.Name); existing != nil && birthday != nil {
		if _, ok := existing.Birthday(); ok {
			abortWithError(c, model.ErrBirthdayAlreadySet)
			return
		}
	}
	record, created, err := s.book.AddContact(request.Name, request.Phone)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if birthday != nil {
		if err := record.SetBirthday(*birthday); err != nil {
			abortWithError(c, err)
			return
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.Info(c.Request.Context(), "contact created", zap.String("name", record.Name()))
	}
	c.IndentedJSON(status, toContact(record))
}

// findContactByName responds with the contact whose name matches the name parameter of the
// request URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Ann
func (s *server) findContactByName(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.book.Find(c.Param("name"))
	if record == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, toContact(record))
}

// updateContactByName replaces one phone number of the named contact and responds with the new
// version of the contact.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Ann --request "PUT" --include --header "Content-Type: application/json" --data '{"old_phone": "0501234567", "new_phone": "0509876543"}'
func (s *server) updateContactByName(c *gin.Context) {
	var request dto.ChangePhoneRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.book.Find(c.Param("name"))
	if record == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err := record.EditPhone(request.OldPhone, request.NewPhone); err != nil {
		abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, toContact(record))
}

// deleteContactByName deletes the named contact from the address book.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Ann --request "DELETE"
func (s *server) deleteContactByName(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := c.Param("name")
	if !s.book.Delete(name) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	logger.Info(c.Request.Context(), "contact deleted", zap.String("name", name))
	c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
}

// deletePhone removes every occurrence of the phone parameter from the named contact and responds
// with the remaining contact. Removing a number the contact does not have is not an error.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Ann/phones/0501234567 --request "DELETE"
func (s *server) deletePhone(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.book.Find(c.Param("name"))
	if record == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	record.RemovePhone(c.Param("phone"))
	c.IndentedJSON(http.StatusOK, toContact(record))
}

// setBirthday sets the birthday of the named contact. A contact has at most one birthday, so a
// second call is answered with CONFLICT.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Ann/birthday --request "PUT" --include --header "Content-Type: application/json" --data '{"birthday": "12.06.1990"}'
func (s *server) setBirthday(c *gin.Context) {
	var request dto.BirthdayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.book.Find(c.Param("name"))
	if record == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err := record.AddBirthday(request.Birthday); err != nil {
		abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, toContact(record))
}

// findBirthdays responds with everybody who has to be congratulated within the next week. The
// optional URL parameter 'today' (YYYY.MM.DD) replaces the current date.
//
// REST API calls:
//
//	> curl "http://localhost:8080/birthdays"
//	> curl "http://localhost:8080/birthdays?today=2024.06.10"
func (s *server) findBirthdays(c *gin.Context) {
	today := s.now()
	if raw := c.Query("today"); raw != "" {
		parsed, err := time.Parse(addressbook.CongratulationLayout, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid today parameter"})
			return
		}
		today = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	greetings := s.book.UpcomingBirthdays(today)
	result := make([]dto.Greeting, 0, len(greetings))
	for _, greeting := range greetings {
		result = append(result, dto.Greeting{Name: greeting.Name, CongratulationDate: greeting.CongratulationDate})
	}
	c.IndentedJSON(http.StatusOK, result)
}

// toContact converts a record into its JSON representation.
func toContact(record *model.Record) dto.Contact {
	phones := record.Phones()
	contact := dto.Contact{Name: record.Name(), Phones: make([]string, 0, len(phones))}
	for _, phone := range phones {
		contact.Phones = append(contact.Phones, phone.String())
	}
	if birthday, ok := record.Birthday(); ok {
		formatted := birthday.String()
		contact.Birthday = &formatted
	}
	return contact
}

// abortWithError answers with the status code that matches the kind of err.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidPhone),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrOldPhoneNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrBirthdayAlreadySet):
		status = http.StatusConflict
	default:
		logger.Error(c.Request.Context(), "unexpected error", zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}
