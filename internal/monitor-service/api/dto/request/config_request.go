package request

type SetConfigRequest struct {
	Value string `json:"value" binding:"required" validate:"required"`
	Type  string `json:"type" binding:"omitempty,oneof=string number boolean json" validate:"omitempty,oneof=string number boolean json"`
}
