// internal/hitbox/cache.go
package hitbox

import (
	"sync"

	"github.com/kcolton/carball/pkg/core"
)

// Cache resolves and memoizes one shape per player for the duration of a
// match. A player drives a single vehicle per match; when the loadout has
// two entries the team-side entry applies (index 0 = blue, 1 = orange).
type Cache struct {
	m      sync.Mutex
	shapes map[string]Shape
}

func NewCache() *Cache {
	return &Cache{
		shapes: make(map[string]Shape),
	}
}

// PlayerShape returns the hitbox for the player's vehicle. ok is false when
// the player has no loadout entry at all.
func (c *Cache) PlayerShape(p *core.Player) (Shape, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	if s, ok := c.shapes[p.Name]; ok {
		return s, true
	}

	var entry core.LoadoutEntry
	switch {
	case len(p.Loadout) == 1:
		entry = p.Loadout[0]
	case len(p.Loadout) >= 2:
		if p.IsOrange {
			entry = p.Loadout[1]
		} else {
			entry = p.Loadout[0]
		}
	default:
		return nil, false
	}

	s := ShapeFor(entry.CarItemID)
	c.shapes[p.Name] = s
	return s, true
}

// Reset clears all cached shapes, for reuse across matches.
func (c *Cache) Reset() {
	c.m.Lock()
	defer c.m.Unlock()
	c.shapes = make(map[string]Shape)
}
