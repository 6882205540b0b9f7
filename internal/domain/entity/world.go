package entity

// World is the arena of one loaded stage: the static platforms plus every
// entity the simulation touches. It is owned by the game loop and passed
// explicitly to every system.
type World struct {
	Platforms   []Platform
	Props       []*Prop
	Hazards     []Hazard
	Player      *Player
	Enemies     []*Enemy
	Items       []*Item
	Projectiles []*Projectile

	Frame uint64

	nextID          EntityID
	platformVersion uint64
	registry        map[EntityID]Actor
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "none"
		registry: make(map[EntityID]Actor),
	}
}

// NextID returns a new unique entity ID (never recycled)
func (w *World) NextID() EntityID {
	if w.nextID == NoEntity {
		w.nextID = 1
	}
	id := w.nextID
	w.nextID++
	return id
}

// SetPlatforms replaces the platform set wholesale.
func (w *World) SetPlatforms(platforms []Platform) {
	w.Platforms = append([]Platform(nil), platforms...)
	w.platformVersion++
}

// PlatformVersion changes every time the platform set is replaced
func (w *World) PlatformVersion() uint64 {
	return w.platformVersion
}

// SetPlayer installs the player
func (w *World) SetPlayer(p *Player) {
	if w.Player != nil {
		delete(w.registry, w.Player.ID)
	}
	w.Player = p
	w.register(p)
}

// AddEnemy registers an enemy
func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
	w.register(e)
}

// AddItem registers an item
func (w *World) AddItem(it *Item) {
	w.Items = append(w.Items, it)
	w.register(it)
}

// AddProjectile registers a projectile
func (w *World) AddProjectile(p *Projectile) {
	w.Projectiles = append(w.Projectiles, p)
	w.register(p)
}

// register indexes an actor by ID. A zero World allocates its registry here.
func (w *World) register(a Actor) {
	if w.registry == nil {
		w.registry = make(map[EntityID]Actor)
	}
	w.registry[a.EntityID()] = a
}

// Actor resolves a handle. Despawned handles resolve to nothing.
func (w *World) Actor(id EntityID) (Actor, bool) {
	if id == NoEntity {
		return nil, false
	}
	a, ok := w.registry[id]
	return a, ok
}

// Damageable resolves a handle to something that accepts damage
func (w *World) Damageable(id EntityID) (Damageable, bool) {
	a, ok := w.Actor(id)
	if !ok {
		return nil, false
	}
	d, ok := a.(Damageable)
	return d, ok
}

// Reap removes inactive enemies, items and projectiles and invalidates
// enemy target handles that pointed at them. Returns the number removed.
func (w *World) Reap() int {
	removed := 0

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Active {
			enemies = append(enemies, e)
			continue
		}
		delete(w.registry, e.ID)
		removed++
	}
	clear(w.Enemies[len(enemies):])
	w.Enemies = enemies

	items := w.Items[:0]
	for _, it := range w.Items {
		if it.Active {
			items = append(items, it)
			continue
		}
		delete(w.registry, it.ID)
		removed++
	}
	clear(w.Items[len(items):])
	w.Items = items

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
			continue
		}
		delete(w.registry, p.ID)
		removed++
	}
	clear(w.Projectiles[len(projectiles):])
	w.Projectiles = projectiles

	if removed > 0 {
		for _, e := range w.Enemies {
			if _, ok := w.registry[e.Target]; e.Target != NoEntity && !ok {
				e.Target = NoEntity
			}
		}
	}
	return removed
}

// CountEnemies returns the number of enemies still in the world
func (w *World) CountEnemies() int {
	return len(w.Enemies)
}
