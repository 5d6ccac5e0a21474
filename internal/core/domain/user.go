package domain

// Credentials are compared by plain equality. Fixtures store them in clear
// text; hashing them would change the login contract.
type Credentials struct {
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
}

// PersonName is descriptive fixture data, never used for logic.
type PersonName struct {
	Title string `json:"title,omitempty" bson:"title,omitempty"`
	First string `json:"first,omitempty" bson:"first,omitempty"`
	Last  string `json:"last,omitempty" bson:"last,omitempty"`
}

// User is loaded from fixtures at startup and never created or deleted at
// runtime. Only its cart changes.
type User struct {
	Login Credentials `json:"login"`
	Name  PersonName  `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
	Cart  Cart        `json:"cart"`
}

// Username is shorthand for u.Login.Username.
func (u *User) Username() string { return u.Login.Username }

// Clone returns a copy of u whose cart can be modified independently.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Cart = u.Cart.Clone()
	return &clone
}
