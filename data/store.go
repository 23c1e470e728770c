// Package data holds the in-memory sample inventory used by demos and
// tests that run without a database.
package data

import (
	"fmt"
	"sync"
)

type SampleRoom struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
	Available bool     `json:"available"`
}

type SampleBooking struct {
	ID         string `json:"id"`
	RoomID     string `json:"roomId"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	Status     string `json:"status"`
}

// Store is a process-lifetime sample dataset guarded by a mutex.
type Store struct {
	mu            sync.Mutex
	Rooms         []SampleRoom
	Bookings      []SampleBooking
	nextBookingID int
}

func NewStore() *Store {
	return &Store{
		Rooms: []SampleRoom{
			{ID: "1", Name: "Ocean View Suite", Type: "suite", Price: 299, Capacity: 4, Amenities: []string{"balcony", "minibar", "sea view"}, Image: "/rooms/1.jpg", Available: true},
			{ID: "2", Name: "Standard Double", Type: "double", Price: 129, Capacity: 2, Amenities: []string{"wifi", "tv"}, Image: "/rooms/2.jpg", Available: true},
			{ID: "3", Name: "Family Room", Type: "family", Price: 189, Capacity: 5, Amenities: []string{"wifi", "tv", "extra bed"}, Image: "/rooms/3.jpg", Available: true},
			{ID: "4", Name: "Deluxe King", Type: "deluxe", Price: 219, Capacity: 3, Amenities: []string{"wifi", "tv", "minibar", "bathtub"}, Image: "/rooms/4.jpg", Available: true},
			{ID: "5", Name: "Economy Single", Type: "single", Price: 79, Capacity: 1, Amenities: []string{"wifi"}, Image: "/rooms/5.jpg", Available: true},
		},
		Bookings: []SampleBooking{
			{ID: "b1", RoomID: "1", GuestName: "John Doe", GuestEmail: "john@example.com", CheckIn: "2025-02-15", CheckOut: "2025-02-18", Guests: 2, Status: "confirmed"},
			{ID: "b2", RoomID: "2", GuestName: "Jane Smith", GuestEmail: "jane@example.com", CheckIn: "2025-02-12", CheckOut: "2025-02-14", Guests: 2, Status: "confirmed"},
			{ID: "b3", RoomID: "3", GuestName: "Bob Wilson", GuestEmail: "bob@example.com", CheckIn: "2025-02-20", CheckOut: "2025-02-22", Guests: 4, Status: "pending"},
		},
		nextBookingID: 4,
	}
}

// GenerateBookingID returns "b4", "b5", ... across the store's lifetime.
func (s *Store) GenerateBookingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("b%d", s.nextBookingID)
	s.nextBookingID++
	return id
}

// AddBooking appends a booking under the lock and returns its assigned id.
func (s *Store) AddBooking(b SampleBooking) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = fmt.Sprintf("b%d", s.nextBookingID)
		s.nextBookingID++
	}
	s.Bookings = append(s.Bookings, b)
	return b.ID
}

// RoomByID returns a copy of the matching room.
func (s *Store) RoomByID(id string) (SampleRoom, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return SampleRoom{}, false
}
