package entity

// Guest is keyed by IDNumber (document number), unique across guests.
// Contact fields are last-write-wins on repeat stays.
type Guest struct {
	Base
	Name     string `db:"name"`
	LastName string `db:"last_name"`
	IDNumber string `db:"id_number"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	Age      *int   `db:"age"` // 1-120 or absent
	Country  string `db:"country"`
}
