package entity

// AppointmentType representa un tipo de cita ofrecido por una empresa.
// El par (Name, Company) es único. A diferencia de User y Company, el ID
// numérico sí es visible externamente.
type AppointmentType struct {
	ID       int64
	Name     string
	Duration int // positivo, sin unidad fija
	Company  *Company
}
