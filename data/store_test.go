package data

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSampleData(t *testing.T) {
	s := NewStore()
	assert.Len(t, s.Rooms, 5)
	assert.Len(t, s.Bookings, 3)

	room, ok := s.RoomByID("1")
	assert.True(t, ok)
	assert.Equal(t, "Ocean View Suite", room.Name)

	_, ok = s.RoomByID("99")
	assert.False(t, ok)
}

func TestGenerateBookingIDSequence(t *testing.T) {
	s := NewStore()
	assert.Equal(t, "b4", s.GenerateBookingID())
	assert.Equal(t, "b5", s.GenerateBookingID())
}

func TestAddBookingAssignsID(t *testing.T) {
	s := NewStore()
	id := s.AddBooking(SampleBooking{RoomID: "2", GuestName: "Alice"})
	assert.Equal(t, "b4", id)
	assert.Len(t, s.Bookings, 4)
}

func TestGenerateBookingIDConcurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	seen := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- s.GenerateBookingID()
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[string]bool{}
	for id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 50)
}
