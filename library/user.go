package library

// User is a registered library user.
type User struct {
	Name string
	ID   UserIDInt
}

// BuildUser creates a new User.
func BuildUser(name string, id UserIDInt) *User {
	return &User{
		Name: name,
		ID:   id,
	}
}
