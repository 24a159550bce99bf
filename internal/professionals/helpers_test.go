package professionals_test

import "github.com/edalcin/medlog/internal/professionals"

func professionalFixture(name string) professionals.Professional {
	return professionals.Professional{
		Name:      name,
		Specialty: "Cardiology",
	}
}
