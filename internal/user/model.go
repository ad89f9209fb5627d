package user

// Identity is the authenticated principal orders are attributed to.
type Identity struct {
	UID   string
	Email string
}
