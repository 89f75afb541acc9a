// Package restdbtest runs an in-memory stand-in for the remote collection
// store, close enough to json-server for the repository and service tests:
// exact-match query filters, store-assigned ids, PATCH merge semantics.
package restdbtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

type Server struct {
	*httptest.Server

	mu     sync.Mutex
	data   map[string][]map[string]any
	nextID int

	// FailCreate and FailPatch force a 500 on the named collection, for
	// exercising partial-failure paths.
	FailCreate map[string]bool
	FailPatch  map[string]bool
}

func NewServer() *Server {
	s := &Server{
		data:       map[string][]map[string]any{},
		nextID:     1,
		FailCreate: map[string]bool{},
		FailPatch:  map[string]bool{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Seed inserts a record, assigning an id when the record has none.
func (s *Server) Seed(collection string, record any) map[string]any {
	fields := toFields(record)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := fields["id"].(string); !ok || id == "" {
		fields["id"] = s.assignID()
	}
	s.data[collection] = append(s.data[collection], fields)
	return fields
}

// Records returns a copy of the collection's current contents.
func (s *Server) Records(collection string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]map[string]any, len(s.data[collection]))
	copy(records, s.data[collection])
	return records
}

// Record returns the record with the given id, or nil.
func (s *Server) Record(collection, id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.data[collection] {
		if record["id"] == id {
			return record
		}
	}
	return nil
}

func (s *Server) assignID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection := parts[0]

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		s.list(w, r, collection)
	case len(parts) == 1 && r.Method == http.MethodPost:
		s.create(w, r, collection)
	case len(parts) == 2 && r.Method == http.MethodGet:
		s.get(w, collection, parts[1])
	case len(parts) == 2 && r.Method == http.MethodPatch:
		s.patch(w, r, collection, parts[1])
	case len(parts) == 2 && r.Method == http.MethodDelete:
		s.delete(w, collection, parts[1])
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, collection string) {
	query := r.URL.Query()
	matched := make([]map[string]any, 0)
	for _, record := range s.data[collection] {
		match := true
		for field, want := range query {
			if fmt.Sprint(record[field]) != want[0] {
				match = false
				break
			}
		}
		if match {
			matched = append(matched, record)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, collection string) {
	if s.FailCreate[collection] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if id, ok := fields["id"].(string); !ok || id == "" {
		fields["id"] = s.assignID()
	}
	s.data[collection] = append(s.data[collection], fields)
	writeJSON(w, http.StatusCreated, fields)
}

func (s *Server) get(w http.ResponseWriter, collection, id string) {
	for _, record := range s.data[collection] {
		if record["id"] == id {
			writeJSON(w, http.StatusOK, record)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request, collection, id string) {
	if s.FailPatch[collection] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	for _, record := range s.data[collection] {
		if record["id"] == id {
			for field, value := range partial {
				record[field] = value
			}
			writeJSON(w, http.StatusOK, record)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) delete(w http.ResponseWriter, collection, id string) {
	records := s.data[collection]
	for i, record := range records {
		if record["id"] == id {
			s.data[collection] = append(records[:i], records[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func toFields(record any) map[string]any {
	raw, err := json.Marshal(record)
	if err != nil {
		panic(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		panic(err)
	}
	return fields
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
