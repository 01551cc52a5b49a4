package entity

// Crew is unique on (first_name, last_name).
type Crew struct {
	Base
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
