package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// GET /api/order/ws — pushes every newly placed order to connected admin dashboards.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(feedClients, client)
		}
	}
}
