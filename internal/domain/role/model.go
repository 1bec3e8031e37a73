package role

// Role is a player position in the organization, e.g. "GOL" / "Goleiro".
type Role struct {
	ID      int64
	Acronym string
	Name    string
}
