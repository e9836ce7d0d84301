package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Seeds a running server with demo data through the public API: two users,
// a friendship, one trip with an itinerary, and an accepted share.

var baseURL = flag.String("base", "http://localhost:8080", "server base URL")

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func main() {
	flag.Parse()

	aliceToken, aliceID := register("alice", "alice@example.com", "Alice", "Nowak")
	bobToken, bobID := register("bob", "bob@example.com", "Bob", "Kowalski")
	fmt.Printf("registered alice (id=%d) and bob (id=%d)\n", aliceID, bobID)

	// friendship: alice asks, bob accepts
	var friendship struct {
		ID uint `json:"id"`
	}
	call("POST", "/api/v1/friends/requests", aliceToken,
		map[string]interface{}{"addressee_id": bobID}, &friendship)
	call("POST", fmt.Sprintf("/api/v1/friends/requests/%d/respond", friendship.ID), bobToken,
		map[string]interface{}{"action": "accept"}, nil)
	fmt.Println("alice and bob are now friends")

	// alice's trip with an itinerary
	start := time.Now().AddDate(0, 1, 0)
	end := start.AddDate(0, 0, 6)
	var trip struct {
		ID uint `json:"id"`
	}
	call("POST", "/api/v1/trips", aliceToken, map[string]interface{}{
		"destination": "Lisbon",
		"start_date":  start.Format("2006-01-02"),
		"end_date":    end.Format("2006-01-02"),
		"description": "a week of pastel de nata",
	}, &trip)

	call("POST", fmt.Sprintf("/api/v1/trips/%d/accommodations", trip.ID), aliceToken, map[string]interface{}{
		"name":      "Alfama Guesthouse",
		"address":   "Rua dos Remedios 12",
		"check_in":  start.Format("2006-01-02"),
		"check_out": end.Format("2006-01-02"),
	}, nil)
	call("POST", fmt.Sprintf("/api/v1/trips/%d/travels", trip.ID), aliceToken, map[string]interface{}{
		"mode":          "flight",
		"from_location": "Warsaw",
		"to_location":   "Lisbon",
		"depart_at":     start.Format("2006-01-02 15:04:05"),
		"arrive_at":     start.Add(4 * time.Hour).Format("2006-01-02 15:04:05"),
	}, nil)
	fmt.Printf("created trip %d with itinerary\n", trip.ID)

	// share it with bob, who accepts
	var sharing struct {
		ID uint `json:"id"`
	}
	call("POST", fmt.Sprintf("/api/v1/trips/%d/share", trip.ID), aliceToken, map[string]interface{}{
		"friend_id":  bobID,
		"permission": "view",
	}, &sharing)
	call("POST", fmt.Sprintf("/api/v1/shares/%d/respond", sharing.ID), bobToken,
		map[string]interface{}{"action": "accept"}, nil)
	fmt.Println("trip shared with bob (view)")

	fmt.Println("seed complete")
}

func register(username, email, first, last string) (token string, userID uint) {
	var data struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	call("POST", "/api/v1/users/register", "", map[string]interface{}{
		"username":         username,
		"email":            email,
		"first_name":       first,
		"last_name":        last,
		"password":         "seed-password",
		"confirm_password": "seed-password",
	}, &data)
	return data.AccessToken, data.User.ID
}

func call(method, path, token string, body interface{}, out interface{}) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("%s %s: encode body: %v", method, path, err)
		}
	}

	req, err := http.NewRequest(method, *baseURL+path, &buf)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		log.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	if env.Code != 0 {
		log.Fatalf("%s %s: server error %d: %s", method, path, env.Code, env.Message)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			log.Fatalf("%s %s: decode data: %v", method, path, err)
		}
	}
}
