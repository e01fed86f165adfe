package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"

	"github.com/google/uuid"
)

const (
	baseURL  = "http://localhost:8080"
	students = 8
)

var slots = []string{"11:00 AM", "3:00 PM", "6:30 PM"}

type student struct {
	token string
}

func main() {
	var pool []student
	for range students {
		s, err := signUp()
		if err != nil {
			fmt.Println("sign up failed:", err)
			continue
		}
		pool = append(pool, s)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(len(pool) + 1) {
			s := pool[rand.Intn(len(pool))]
			wg.Go(func() { placeOrder(s) })
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func signUp() (student, error) {
	id := uuid.NewString()[:8]
	var res struct {
		Token string `json:"token"`
	}
	status, err := call(http.MethodPost, "/auth/sign-up", "", map[string]string{
		"email":      "load-" + id + "@campus.test",
		"password":   "password-" + id,
		"full_name":  "Load " + id,
		"reg_number": "LOAD" + id,
		"mobile":     "9000000000",
	}, &res, nil)
	if err != nil {
		return student{}, err
	}
	if status != http.StatusCreated {
		return student{}, fmt.Errorf("unexpected status %d", status)
	}
	return student{token: res.Token}, nil
}

// placeOrder fills the cart with a random selection and orders it. Full slots
// are expected once the day fills up.
func placeOrder(s student) {
	services := []entities.ServiceType{entities.ServiceWashing, entities.ServiceIronAndWashing}
	service := services[rand.Intn(len(services))]

	for range rand.Intn(4) + 1 {
		item := entities.ClothingItems[rand.Intn(len(entities.ClothingItems))]
		call(http.MethodPost, "/cart/items", s.token, map[string]string{"service_type": string(service), "item": item}, nil, nil)
	}
	call(http.MethodPost, "/cart/commit", s.token, nil, nil, nil)

	hostel := "GANGA"
	floors := entities.HostelFloors[hostel]
	status, err := call(http.MethodPost, "/orders", s.token, map[string]any{
		"pickup": map[string]any{"hostel": hostel, "floor": floors[rand.Intn(len(floors))]},
		"slot":   slots[rand.Intn(len(slots))],
	}, nil, map[string]string{"Idempotency-Key": uuid.NewString()})
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("POST /orders ->", status)
}

func call(method, path, token string, body, out any, headers map[string]string) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
