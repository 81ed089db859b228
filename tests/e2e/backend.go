//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// FakeBackend stands in for the Savor API. It deduplicates creates by
// Idempotency-Key and can be switched off to simulate an outage.
type FakeBackend struct {
	mu       sync.Mutex
	server   *httptest.Server
	down     bool
	nextID   int
	records  []gin.H
	byKey    map[string]gin.H
	creates  int
	hasStore bool
}

func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{}
	b.Reset()

	engine := gin.New()
	engine.Use(b.outage)
	engine.POST("/reservations", b.create)
	engine.POST("/reservations/guest", b.create)
	engine.GET("/reservations", b.list)
	engine.GET("/reservations/guest", b.list)
	engine.DELETE("/reservations/:id", b.remove)
	engine.DELETE("/reservations/guest/:id", b.remove)
	engine.PUT("/store-owner/reservations/:id/status", b.updateStatus)
	engine.GET("/store-management/my-store", b.myStore)

	b.server = httptest.NewServer(engine)
	return b
}

func (b *FakeBackend) URL() string {
	return b.server.URL
}

func (b *FakeBackend) Close() {
	b.server.Close()
}

func (b *FakeBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.down = false
	b.nextID = 0
	b.records = []gin.H{}
	b.byKey = map[string]gin.H{}
	b.creates = 0
	b.hasStore = false
}

func (b *FakeBackend) SetDown(down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.down = down
}

func (b *FakeBackend) SetHasStore(has bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hasStore = has
}

// CreateCalls counts accepted create requests, duplicates included.
func (b *FakeBackend) CreateCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.creates
}

func (b *FakeBackend) RecordCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

func (b *FakeBackend) outage(c *gin.Context) {
	b.mu.Lock()
	down := b.down
	b.mu.Unlock()
	if down {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "maintenance"})
		return
	}
	c.Next()
}

func (b *FakeBackend) create(c *gin.Context) {
	var body gin.H
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.creates++

	key := c.GetHeader("Idempotency-Key")
	if existing, ok := b.byKey[key]; ok && key != "" {
		c.JSON(http.StatusOK, gin.H{"reservation": existing})
		return
	}

	b.nextID++
	body["_id"] = fmt.Sprintf("srv-%d", b.nextID)
	body["status"] = "confirmed"
	body["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	b.records = append(b.records, body)
	if key != "" {
		b.byKey[key] = body
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "reservation": body})
}

func (b *FakeBackend) list(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := []gin.H{}
	past := []gin.H{}
	for _, r := range b.records {
		switch r["status"] {
		case "confirmed", "pending":
			current = append(current, r)
		default:
			past = append(past, r)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"currentReservations": current,
		"pastReservations":    past,
		"currentCount":        len(current),
		"pastCount":           len(past),
	})
}

func (b *FakeBackend) remove(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, r := range b.records {
		if r["_id"] == c.Param("id") {
			b.records = append(b.records[:i], b.records[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
}

func (b *FakeBackend) updateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.records {
		if r["_id"] == c.Param("id") {
			r["status"] = body.Status
			c.JSON(http.StatusOK, r)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
}

func (b *FakeBackend) myStore(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasStore {
		c.JSON(http.StatusNotFound, gin.H{"error": "no store"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasStore": true, "store": gin.H{"_id": "store-1", "storeName": "Boulangerie du Coin"}})
}
