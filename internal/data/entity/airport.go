package entity

// Airport is unique on (name, closest_big_city).
type Airport struct {
	Base
	Name           string `db:"name"`
	ClosestBigCity string `db:"closest_big_city"`
}
