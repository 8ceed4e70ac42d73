package dto

// CompanyRefRequest referencia de empresa en payloads de escritura: o bien el
// code de una empresa existente, o bien un objeto inline con name para crearla
// en la misma petición (registro anónimo). Code tiene prioridad si vienen
// ambos.
type CompanyRefRequest struct {
	Code string `json:"code" validate:"omitempty,uuid4"`
	Name string `json:"name" validate:"omitempty,min=2,max=255"`
}

// CreateCompanyRequest entrada para crear una empresa (solo admins).
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

// UpdateCompanyRequest entrada para renombrar una empresa.
type UpdateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

// CompanyResponse salida de una empresa. El ID numérico interno nunca se
// expone; las referencias externas usan siempre Code.
type CompanyResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
