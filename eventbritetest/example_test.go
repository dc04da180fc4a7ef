package eventbritetest_test

import (
	"context"
	"fmt"

	"github.com/broady/eventbrite"
	"github.com/broady/eventbrite/eventbritetest"
)

func ExampleServer() {
	srv := eventbritetest.NewServer()
	defer srv.Close()
	srv.Handle(eventbrite.MethodOrganizerNew, map[string]any{
		"process": map[string]any{"id": 1234, "status": "OK"},
	})

	client := srv.NewClient("app-key", "user-key")
	defer client.Close()

	result, err := client.NewOrganizer(context.Background(), &eventbrite.NewOrganizerParams{
		Name: eventbrite.Ref("Gophers"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	call, _ := srv.LastCall()
	fmt.Println(call.Method, call.Params())
	fmt.Println(result.(map[string]any)["process"].(map[string]any)["status"])
	// Output:
	// organizer_new map[name:Gophers]
	// OK
}
