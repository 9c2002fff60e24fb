package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"gitlab.com/dirk.krummacker/contacts-assistant/pkg/model"
)

const serverPort = 8080

// Measures the average latency in microseconds of the REST API for growing address books.
//
// Usage example on the command line:
// > go run main.go
func main() {
	fmt.Println()
	fmt.Println("  Elements      POST       PUT       GET    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	for _, loops := range sizes {
		names := createRandomSliceWithNames(loops)
		fmt.Printf("%10d", loops)
		{
			// POST requests
			f := func(name string) int64 {
				return sendPostRequest(name, phoneFor(name, 0))
			}
			callInLoop(names, f)
		}
		{
			// PUT requests
			f := func(name string) int64 {
				return sendPutRequest(name, phoneFor(name, 0), phoneFor(name, 1))
			}
			callInLoop(shuffled(names), f)
		}
		{
			// GET requests
			f := func(name string) int64 {
				return sendGetDeleteRequest(name, http.MethodGet)
			}
			callInLoop(shuffled(names), f)
		}
		{
			// DELETE requests
			f := func(name string) int64 {
				return sendGetDeleteRequest(name, http.MethodDelete)
			}
			callInLoop(shuffled(names), f)
		}
		fmt.Println()
	}
}

func callInLoop(names []string, f func(name string) int64) {
	var duration int64
	for _, name := range names {
		duration += f(name)
	}
	fmt.Printf("%10d", duration/int64(len(names)*1000))
}

func createRandomSliceWithNames(loops int) []string {
	prefix := rand.Int63()
	names := make([]string, 0, loops)
	for i := 0; i < loops; i++ {
		names = append(names, fmt.Sprintf("Marcus-Antonius-%d-%d", prefix, i))
	}
	return names
}

func shuffled(names []string) []string {
	result := make([]string, len(names))
	copy(result, names)
	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// phoneFor derives a valid ten digit phone number from a name.
func phoneFor(name string, variant int) string {
	var sum uint64
	for _, r := range name {
		sum = sum*31 + uint64(r)
	}
	return fmt.Sprintf("%010d", (sum+uint64(variant))%10000000000)
}

func sendPostRequest(name string, phone string) int64 {
	body, err := json.Marshal(model.AddContactRequest{Name: name, Phone: phone})
	if err != nil {
		panic(err)
	}
	requestURL := fmt.Sprintf("http://localhost:%d/contacts", serverPort)
	_, duration := sendRequest(http.MethodPost, requestURL, bytes.NewReader(body))
	return duration
}

func sendPutRequest(name string, oldPhone string, newPhone string) int64 {
	body, err := json.Marshal(model.ChangePhoneRequest{OldPhone: oldPhone, NewPhone: newPhone})
	if err != nil {
		panic(err)
	}
	requestURL := fmt.Sprintf("http://localhost:%d/contacts/%s", serverPort, url.PathEscape(name))
	resBody, duration := sendRequest(http.MethodPut, requestURL, bytes.NewReader(body))
	var contact model.Contact
	if err := json.Unmarshal(resBody, &contact); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return duration
}

func sendGetDeleteRequest(name string, method string) int64 {
	requestURL := fmt.Sprintf("http://localhost:%d/contacts/%s", serverPort, url.PathEscape(name))
	_, duration := sendRequest(method, requestURL, nil)
	return duration
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, int64) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return resBody, after - before
}
