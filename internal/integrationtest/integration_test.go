package integrationtest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/assistant"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/importer"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/service"
	"gitlab.com/dirk.krummacker/contacts-assistant/pkg/model"
)

// today is a Monday; Dirk's birthday on Friday 29 November is in the upcoming week.
func today() time.Time {
	return time.Date(2024, time.November, 25, 8, 0, 0, 0, time.UTC)
}

// seededBook imports the sample data of scripts/database.sql through a mock database.
func seededBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := mock.NewRows([]string{"id", "name", "phone", "birthday"}).
		AddRow(1, "Dirk", "4201234567", time.Date(1974, time.November, 29, 0, 0, 0, 0, time.UTC)).
		AddRow(2, "Pavla", "4200234542", time.Date(1980, time.January, 27, 0, 0, 0, 0, time.UTC)).
		AddRow(3, "Adam", "4203335557", time.Date(2009, time.March, 31, 0, 0, 0, 0, time.UTC)).
		AddRow(4, "David", "4203335557", time.Date(2011, time.December, 11, 0, 0, 0, 0, time.UTC)).
		AddRow(5, "Dirk", "4209998887", nil)
	mock.ExpectQuery("SELECT id, name, phone, birthday").WillReturnRows(rows)

	book := addressbook.New()
	summary, err := importer.New(db).Import(context.Background(), book)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Rows)
	assert.Equal(t, 4, summary.Created)
	require.NoError(t, mock.ExpectationsWereMet())
	return book
}

// serve executes one request against router and returns the recorder.
func serve(router *gin.Engine, method string, url string, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(method, url, strings.NewReader(body))
	router.ServeHTTP(recorder, request)
	return recorder
}

// TestContactHappyPath imports contacts, changes them over the REST API and finally inspects the
// result with the interactive assistant, all on the same address book.
func TestContactHappyPath(t *testing.T) {
	book := seededBook(t)
	gin.SetMode(gin.ReleaseMode)
	router := service.SetupHttpRouter(book, service.WithClock(today))

	// the imported contact has both phone numbers
	getRecorder := serve(router, "GET", "/contacts/Dirk", "")
	assert.Equal(t, http.StatusOK, getRecorder.Code)
	var dirk model.Contact
	require.NoError(t, json.Unmarshal(getRecorder.Body.Bytes(), &dirk))
	assert.Equal(t, []string{"4201234567", "4209998887"}, dirk.Phones)
	require.NotNil(t, dirk.Birthday)
	assert.Equal(t, "29.11.1974", *dirk.Birthday)

	// create a new contact
	postRecorder := serve(router, "POST", "/contacts", `
		{
			"name": "Erika",
			"phone": "4908154711",
			"birthday": "01.12.1969"
		}
	`)
	assert.Equal(t, http.StatusCreated, postRecorder.Code)

	// update its phone number
	putRecorder := serve(router, "PUT", "/contacts/Erika", `{"old_phone": "4908154711", "new_phone": "4912345678"}`)
	assert.Equal(t, http.StatusOK, putRecorder.Code)

	// remove a contact
	deleteRecorder := serve(router, "DELETE", "/contacts/Pavla", "")
	assert.Equal(t, http.StatusOK, deleteRecorder.Code)

	// Dirk on Friday, Erika's Sunday birthday on Monday
	birthdaysRecorder := serve(router, "GET", "/birthdays", "")
	assert.Equal(t, http.StatusOK, birthdaysRecorder.Code)
	var greetings []model.Greeting
	require.NoError(t, json.Unmarshal(birthdaysRecorder.Body.Bytes(), &greetings))
	assert.Equal(t, []model.Greeting{
		{Name: "Dirk", CongratulationDate: "2024.11.29"},
		{Name: "Erika", CongratulationDate: "2024.12.02"},
	}, greetings)

	// the assistant sees the same book
	var out bytes.Buffer
	bot := assistant.New(book, assistant.NewConsoleView(&out), assistant.WithClock(today))
	in := strings.NewReader("phone Erika\nall\nbirthdays\nclose\n")
	require.NoError(t, bot.Run(context.Background(), in, &bytes.Buffer{}))

	assert.Equal(t, strings.Join([]string{
		"Welcome to the assistant bot!",
		"Erika's phone number is 4912345678.",
		"Contact name: Dirk, phones: 4201234567; 4209998887, Birthday: 29.11.1974",
		"Contact name: Adam, phones: 4203335557, Birthday: 31.03.2009",
		"Contact name: David, phones: 4203335557, Birthday: 11.12.2011",
		"Contact name: Erika, phones: 4912345678, Birthday: 01.12.1969",
		"Upcoming birthdays in the next week:",
		"Dirk: 2024.11.29",
		"Erika: 2024.12.02",
		"Good bye!",
		"",
	}, "\n"), out.String())
}
