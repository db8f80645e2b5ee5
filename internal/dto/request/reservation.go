package request

// CreateReservationRequest is the admission payload. Field names follow the
// external contract used by automation callers, hence camelCase. Age is
// optional; when present it must be in [1,120]. BedID is optional: when
// absent the resolver picks the first free bed.
type CreateReservationRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	LastName string  `json:"lastName" validate:"required,min=1,max=100"`
	IDNumber string  `json:"idNumber" validate:"required,min=3,max=50"`
	Phone    string  `json:"phone" validate:"required,min=5,max=30"`
	Email    string  `json:"email" validate:"required,email"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,min=1,max=120"`
	Country  string  `json:"country" validate:"required,min=2,max=100"`
	CheckIn  string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	BedID    *string `json:"bedId,omitempty" validate:"omitempty,uuid4"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// UpdateReservationRequest changes bed assignment, dates, status, notes and
// guest contact fields in one logical operation. Guest fields are written
// through to the referenced guest row.
type UpdateReservationRequest struct {
	BedID    *string             `json:"bedId,omitempty" validate:"omitempty,uuid4"`
	CheckIn  *string             `json:"checkIn,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut *string             `json:"checkOut,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status   *string             `json:"status,omitempty" validate:"omitempty,oneof=confirmed pending cancelled"`
	Notes    *string             `json:"notes,omitempty" validate:"omitempty,max=500"`
	Guest    *GuestContactUpdate `json:"guest,omitempty"`
}

type GuestContactUpdate struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=5,max=30"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,min=1,max=120"`
	Country  *string `json:"country,omitempty" validate:"omitempty,min=2,max=100"`
}

type AvailabilitySearchRequest struct {
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=pension hostel_dorm"`
}
