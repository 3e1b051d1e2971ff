package chat

// Hub relays chat messages between connected clients. It owns the
// client set; all membership changes go through its channels so no
// lock is needed.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// Client is one connected chat participant.
type Client struct {
	Username string
	send     chan []byte
}

const clientSendBuffer = 16

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

func NewClient(username string) *Client {
	return &Client{
		Username: username,
		send:     make(chan []byte, clientSendBuffer),
	}
}

// Messages returns the channel of messages destined for this client.
func (c *Client) Messages() <-chan []byte {
	return c.send
}

func (h *Hub) Register(c *Client) {
	h.register <- c
}

func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

func (h *Hub) Broadcast(message []byte) {
	h.broadcast <- message
}

// Run processes registrations and broadcasts until the process exits.
// A client that cannot keep up is dropped rather than blocking the hub.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}
