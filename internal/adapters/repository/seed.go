package repository

import "github.com/petboard/petboard/internal/core/domain"

func strPtr(s string) *string {
	return &s
}

// SeededDataset returns a dataset pre-filled with a realistic fixture
// set: three clients, four pets and a spread of records per pet.
func SeededDataset() *Dataset {
	d := NewDataset()

	d.clients = []domain.Client{
		{ID: 1, Name: "Sarah Mitchell", Status: domain.StatusActive},
		{ID: 2, Name: "James Okafor", Status: domain.StatusActive},
		{ID: 3, Name: "Elena Petrova", Status: domain.StatusInactive},
	}

	d.pets = []domain.Pet{
		{
			ID: 1, ClientID: 1, Name: "Bailey", Status: domain.StatusActive,
			Type: "Dog", Breed: "Golden Retriever", Size: "Large",
			Temper: "Friendly", Color: "Golden", Gender: "Neutered - Male",
			WeightKg: 32.5, DOB: "2020-01-15",
			Attributes:    []string{"Barks", "Good with kids"},
			Notes:         strPtr("Allergic to chicken"),
			CustomerNotes: "Prefers the small yard",
			Photos:        []string{"bailey-01.jpg", "bailey-02.jpg"},
		},
		{
			ID: 2, ClientID: 1, Name: "Whiskers", Status: domain.StatusActive,
			Type: "Cat", Breed: "Maine Coon", Size: "Medium",
			Temper: "Independent", Color: "Tabby", Gender: "Spayed - Female",
			WeightKg: 5.8, DOB: "2018-06-03",
			Attributes:    []string{"Shy"},
			CustomerNotes: "",
			Photos:        []string{"whiskers-01.jpg"},
		},
		{
			ID: 3, ClientID: 2, Name: "Rex", Status: domain.StatusActive,
			Type: "Dog", Breed: "German Shepherd", Size: "Large",
			Temper: "Protective", Color: "Black and Tan", Gender: "Male",
			WeightKg: 38, DOB: "2021-11-20",
			Attributes:    []string{"Barks", "Pulls on leash"},
			CustomerNotes: "Needs slow introductions",
			Photos:        []string{},
		},
		{
			ID: 4, ClientID: 3, Name: "Luna", Status: domain.StatusInactive,
			Type: "Dog", Breed: "Poodle", Size: "Small",
			Temper: "Calm", Color: "White", Gender: "Spayed - Female",
			WeightKg: 6.25, DOB: "2016-02-29",
			Attributes:    []string{"Blind"},
			Notes:         strPtr("Senior diet"),
			CustomerNotes: "Carry up the stairs",
			Photos:        []string{"luna-01.jpg"},
		},
	}

	d.vaccinations = []domain.Vaccination{
		{ID: 1, PetID: 1, Vaccine: "Rabies", Date: "2024-03-10", Due: "2025-03-10"},
		{ID: 2, PetID: 1, Vaccine: "DHPP", Date: "2024-03-10", Due: "2025-03-10"},
		{ID: 3, PetID: 2, Vaccine: "FVRCP", Date: "2024-07-01", Due: "2025-07-01"},
		{ID: 4, PetID: 3, Vaccine: "Rabies", Date: "2024-01-18", Due: "2025-01-18"},
	}
	d.nextVaccinationID = 5

	d.grooming = []domain.Grooming{
		{ID: 1, PetID: 1, Service: "Full groom", Date: "2024-08-02", Notes: "Matting behind ears"},
		{ID: 2, PetID: 4, Service: "Bath and trim", Date: "2024-09-14", Notes: ""},
		{ID: 3, PetID: 1, Service: "Nail clip", Date: "2024-10-01", Notes: ""},
	}

	d.bookings = []domain.Booking{
		{ID: 1, PetID: 1, Type: "Daycare", Start: "2025-01-06T08:00:00Z", End: "2025-01-06T17:00:00Z", Status: "Confirmed"},
		{ID: 2, PetID: 3, Type: "Boarding", Start: "2025-02-10T09:00:00Z", End: "2025-02-14T10:00:00Z", Status: "Pending"},
		{ID: 3, PetID: 2, Type: "Grooming", Start: "2025-01-20T11:00:00Z", End: "2025-01-20T12:00:00Z", Status: "Confirmed"},
	}

	return d
}
