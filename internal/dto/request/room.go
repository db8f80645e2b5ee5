package request

type RoomRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Type     string `json:"type" validate:"required,oneof=pension hostel_dorm"`
	Capacity int    `json:"capacity" validate:"required,min=1,max=50"`
}

type RoomUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=pension hostel_dorm"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1,max=50"`
}
