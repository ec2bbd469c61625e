package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

const (
	hotelListTTL    = 5 * time.Minute
	hotelKeyPattern = "hotels:*"
)

// HotelCache keeps hotel list pages in redis. A nil *HotelCache is a
// valid no-op cache so the rest of the code never branches on whether
// redis is configured.
type HotelCache struct {
	rdb *redis.Client
}

func NewHotelCache(addr string) *HotelCache {
	if addr == "" {
		return nil
	}
	return &HotelCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func ListKey(sortBy string, limit int) string {
	return fmt.Sprintf("hotels:%s:%d", sortBy, limit)
}

func (c *HotelCache) GetList(ctx context.Context, key string) ([]models.Hotel, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("hotel cache get:", err)
		}
		return nil, false
	}

	var hotels []models.Hotel
	if err := json.Unmarshal([]byte(raw), &hotels); err != nil {
		return nil, false
	}
	return hotels, true
}

func (c *HotelCache) SetList(ctx context.Context, key string, hotels []models.Hotel) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(hotels)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, hotelListTTL).Err(); err != nil {
		log.Println("hotel cache set:", err)
	}
}

// Invalidate drops every cached list page. Called after any admin
// mutation of a hotel.
func (c *HotelCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, hotelKeyPattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("hotel cache invalidate:", err)
	}
}
