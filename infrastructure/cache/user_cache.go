package cache

import (
	"strings"
	"sync"

	"trackadmin/models"
)

// UserCache caches users by user name.
type UserCache struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserCache() *UserCache {
	return &UserCache{users: make(map[string]models.User)}
}

func (c *UserCache) Add(userName string, user models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[strings.ToLower(userName)] = user
}

func (c *UserCache) Get(userName string) (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[strings.ToLower(userName)]
	return u, ok
}

func (c *UserCache) Delete(userName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, strings.ToLower(userName))
}
