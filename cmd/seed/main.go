// seed puebla la base de datos con fixtures de desarrollo: la empresa del
// sistema con su super admin, dos empresas de demostración con usuarios de
// cada tier y un catálogo de tipos de cita por empresa.
//
// Uso: go run ./cmd/seed
// Es idempotente: los registros que ya existen se omiten.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agenda-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// seedPassword es la contraseña de todos los usuarios de demostración.
const seedPassword = "Pa$$w0rd1"

type seedUser struct {
	username string
	email    string
	fname    string
	lname    string
	tier     string
}

type seedCompany struct {
	name  string
	users []seedUser
	types []entity.AppointmentType
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	companies := postgres.NewCompanyRepository(pool)
	users := postgres.NewUserRepository(pool)
	types := postgres.NewAppointmentTypeRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}

	fixtures := []seedCompany{
		{
			name: entity.SystemCompanyName,
			users: []seedUser{
				{"superadmin", "superadmin@agendapro.test", "Sara", "Prieto", entity.RoleSuperAdmin},
				{"admin_one", "admin@agendapro.test", "Andrés", "Mora", entity.RoleAdmin},
			},
		},
		{
			name: "Clínica Andina",
			users: []seedUser{
				{"andina_admin", "admin@andina.test", "Carla", "Rojas", entity.RoleCompanyAdmin},
				{"andina_user", "user@andina.test", "Pedro", "Luna", entity.RoleUser},
			},
			types: []entity.AppointmentType{
				{Name: "Consulta general", Duration: 30},
				{Name: "Control", Duration: 15},
			},
		},
		{
			name: "Centro Mirador",
			users: []seedUser{
				{"mirador_admin", "admin@mirador.test", "Lucía", "Vega", entity.RoleCompanyAdmin},
				{"mirador_user", "user@mirador.test", "Jorge", "Silva", entity.RoleUser},
			},
			types: []entity.AppointmentType{
				{Name: "Sesión inicial", Duration: 60},
			},
		},
	}

	for _, sc := range fixtures {
		company, err := companies.GetByName(sc.name)
		if err != nil {
			fail("buscar empresa %q: %v", sc.name, err)
		}
		if company == nil {
			company = &entity.Company{Code: uuid.NewString(), Name: sc.name}
			if err := companies.Create(company); err != nil {
				fail("crear empresa %q: %v", sc.name, err)
			}
			fmt.Printf("empresa creada: %s (%s)\n", company.Name, company.Code)
		}

		for _, su := range sc.users {
			existing, err := users.GetByUsername(su.username)
			if err != nil {
				fail("buscar usuario %q: %v", su.username, err)
			}
			if existing != nil {
				continue
			}
			u := &entity.User{
				Code:         uuid.NewString(),
				Username:     su.username,
				PasswordHash: string(hash),
				Roles:        []string{su.tier},
				Fname:        su.fname,
				Lname:        su.lname,
				Email:        su.email,
				Company:      company,
			}
			if err := users.Create(u); err != nil {
				fail("crear usuario %q: %v", su.username, err)
			}
			fmt.Printf("usuario creado: %s [%s] en %s\n", u.Username, su.tier, company.Name)
		}

		existingTypes, err := types.ListByCompany(company.ID, 100, 0)
		if err != nil {
			fail("listar tipos de cita de %q: %v", sc.name, err)
		}
		present := make(map[string]bool, len(existingTypes))
		for _, t := range existingTypes {
			present[t.Name] = true
		}
		for _, st := range sc.types {
			if present[st.Name] {
				continue
			}
			at := &entity.AppointmentType{Name: st.Name, Duration: st.Duration, Company: company}
			if err := types.Create(at); err != nil {
				fail("crear tipo de cita %q: %v", st.Name, err)
			}
			fmt.Printf("tipo de cita creado: %s (%d min) en %s\n", at.Name, at.Duration, company.Name)
		}
	}

	fmt.Println("seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
