//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const usersJSON = `[
  {"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
   "address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874"},
   "company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net"}},
  {"id": 2, "name": "Ervin Howell", "username": "Antonette", "email": "Shanna@melissa.tv",
   "address": {"street": "Victor Plains", "suite": "Suite 879", "city": "Wisokyburgh", "zipcode": "90566-7771"},
   "company": {"name": "Deckow-Crist", "catchPhrase": "Proactive didactic contingency"}},
  {"id": 3, "name": "Clementine Bauch", "username": "Samantha", "email": "Nathan@yesenia.net",
   "address": {"street": "Douglas Extension", "suite": "Suite 847", "city": "McKenziehaven", "zipcode": "59590-4157"},
   "company": {"name": "Romaguera-Jacobson", "catchPhrase": "Face to face bifurcated interface"}}
]`

// UserServer serves the fixture users and counts requests
type UserServer struct {
	*httptest.Server
	Requests atomic.Int32
	Fail     atomic.Bool
}

// StartUserServer starts a users endpoint that is closed with the test
func StartUserServer(t *testing.T) *UserServer {
	t.Helper()
	s := &UserServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Requests.Add(1)
		if s.Fail.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	}))
	t.Cleanup(s.Close)
	return s
}
