package dto

// CreateAppointmentTypeRequest entrada para crear un tipo de cita. Company es
// opcional: un company admin la omite (se asigna la suya); un admin puede
// referenciar cualquier empresa por code.
type CreateAppointmentTypeRequest struct {
	Name     string             `json:"name" validate:"required,min=3,max=255"`
	Duration int                `json:"duration" validate:"required,gt=0"`
	Company  *CompanyRefRequest `json:"company"`
}

// UpdateAppointmentTypeRequest entrada para editar un tipo de cita. La empresa
// propietaria no se puede mover.
type UpdateAppointmentTypeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=255"`
	Duration *int    `json:"duration" validate:"omitempty,gt=0"`
}

// AppointmentTypeResponse salida de un tipo de cita. El ID numérico sí es
// visible externamente en este recurso.
type AppointmentTypeResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Duration int             `json:"duration"`
	Company  CompanyResponse `json:"company"`
}

// AppointmentTypeListResponse lista paginada de tipos de cita.
type AppointmentTypeListResponse struct {
	Items []AppointmentTypeResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
