package entity

// SystemCompanyName nombre reservado de la empresa operadora del sistema.
// Existe exactamente una empresa con este nombre; la crea cmd/seed durante el
// aprovisionamiento, nunca el registro público.
const SystemCompanyName = "AgendaPro"

// Company representa una organización/tenant del sistema. Cada tenant posee
// sus propios usuarios y tipos de cita.
//
// ID es la identidad numérica interna (0 = aún no persistida). Code es el
// identificador externo (UUID, inmutable): toda referencia que viaja por la
// API usa Code, nunca ID.
type Company struct {
	ID   int64
	Code string
	Name string
}

// IsNew indica si la empresa todavía no tiene identidad persistida, es decir,
// fue creada inline en la misma petición y no referenciada por Code.
func (c *Company) IsNew() bool {
	return c.ID == 0
}
