package main

import (
	"fmt"
	"net/http"
	"time"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/config"
)

// Polls the REST API of the assistant until it answers, for example before scripts start sending
// requests.
//
// Usage example on the command line:
// > PORT=8080 go run main.go
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	url := fmt.Sprintf("http://localhost:%d/contacts", cfg.HTTP.Port)
	totalWaitTime := 0
	for {
		res, err := http.Get(url)
		if err == nil {
			res.Body.Close()
			fmt.Println(res.Status)
			if res.StatusCode == http.StatusOK {
				break
			}
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
