package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Room naming: "trips" carries the active-trip feed, "user:<id>" carries a
// user's notification deltas, "trip:<id>" carries a trip's shared planning
// tools (expenses, packing list, itinerary).

// NewSocketServer initializes and returns a new Socket.IO server
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "subscribeTrips", func(c socketio.Conn) {
		c.Join("trips")
	})

	server.OnEvent("/", "subscribeUser", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in subscribeUser request")
			return
		}
		c.Join("user:" + userID)
	})

	server.OnEvent("/", "unsubscribeUser", func(c socketio.Conn, userID string) {
		if userID != "" {
			c.Leave("user:" + userID)
		}
	})

	server.OnEvent("/", "subscribeTrip", func(c socketio.Conn, tripID string) {
		if tripID == "" {
			log.Println("❌ Invalid tripId in subscribeTrip request")
			return
		}
		c.Join("trip:" + tripID)
	})

	server.OnEvent("/", "unsubscribeTrip", func(c socketio.Conn, tripID string) {
		if tripID != "" {
			c.Leave("trip:" + tripID)
		}
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}

// Change types delivered with every pushed delta.
const (
	DeltaAdded    = "added"
	DeltaModified = "modified"
	DeltaRemoved  = "removed"
)

// Broadcaster pushes change deltas to subscribed rooms. A nil Broadcaster
// drops every push, so services stay usable without a socket server.
type Broadcaster struct {
	server *socketio.Server
}

// NewBroadcaster wraps a socket server for use by the services.
func NewBroadcaster(server *socketio.Server) *Broadcaster {
	return &Broadcaster{server: server}
}

// ToUser pushes an event to a single user's room.
func (b *Broadcaster) ToUser(userID, event string, payload interface{}) {
	if b == nil || b.server == nil || userID == "" {
		return
	}
	b.server.BroadcastToRoom("/", "user:"+userID, event, payload)
}

// ToTrip pushes an event to everyone viewing a trip's shared tools.
func (b *Broadcaster) ToTrip(tripID, event string, payload interface{}) {
	if b == nil || b.server == nil || tripID == "" {
		return
	}
	b.server.BroadcastToRoom("/", "trip:"+tripID, event, payload)
}

// ToFeed pushes an event to the active-trip feed.
func (b *Broadcaster) ToFeed(event string, payload interface{}) {
	if b == nil || b.server == nil {
		return
	}
	b.server.BroadcastToRoom("/", "trips", event, payload)
}
