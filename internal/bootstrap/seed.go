package bootstrap

import "medicab-server/internal/models"

type demoAccount struct {
	user     models.User
	password string
}

func demoUsers() (any, error) {
	accounts := []demoAccount{
		{
			user: models.User{
				BaseModel: models.BaseModel{ID: "admin-1"},
				Email:     "admin@medicab.tn",
				Name:      "Administrateur Medicab",
				Role:      models.RoleAdmin,
				Phone:     "+216 71 000 000",
				Status:    models.UserStatusActive,
			},
			password: "admin123",
		},
		{
			user: models.User{
				BaseModel: models.BaseModel{ID: "doctor-1"},
				Email:     "dr.ben.ali@medicab.tn",
				Name:      "Dr. Mohamed Ben Ali",
				Role:      models.RoleDoctor,
				Phone:     "+216 98 123 456",
				Address:   "12 Avenue Habib Bourguiba, Tunis",
				Specialty: "Médecine générale",
				Status:    models.UserStatusActive,
			},
			password: "doctor123",
		},
		{
			user: models.User{
				BaseModel:        models.BaseModel{ID: "secretary-1"},
				Email:            "secretaire@medicab.tn",
				Name:             "Amira Trabelsi",
				Role:             models.RoleSecretary,
				Phone:            "+216 22 654 321",
				AssignedDoctorID: "doctor-1",
				Status:           models.UserStatusActive,
			},
			password: "secretary123",
		},
	}

	users := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		u := a.user
		if err := u.SetPassword(a.password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func demoPatients() []models.Patient {
	return []models.Patient{
		{
			BaseModel: models.BaseModel{ID: "patient-1"},
			Name:      "Ahmed Mansour",
			Age:       45,
			Gender:    "male",
			Phone:     "+216 55 111 222",
			Address:   "5 Rue de Marseille, Tunis",
			Job:       "Enseignant",
			Diseases: []models.Disease{
				{Name: "Diabète", Emoji: "🩸"},
				{Name: "Hypertension", Emoji: "❤️"},
			},
			DoctorID:           "doctor-1",
			ConsultationsCount: 3,
			LastVisit:          "2024-01-10",
		},
		{
			BaseModel: models.BaseModel{ID: "patient-2"},
			Name:      "Leila Hammami",
			Age:       32,
			Gender:    "female",
			Phone:     "+216 50 333 444",
			Address:   "18 Rue Ibn Khaldoun, Ariana",
			Job:       "Ingénieure",
			Diseases: []models.Disease{
				{Name: "Asthme", Emoji: "🫁"},
			},
			DoctorID:           "doctor-1",
			ConsultationsCount: 1,
			LastVisit:          "2024-01-12",
		},
	}
}

func demoAppointments() []models.Appointment {
	return []models.Appointment{
		{
			BaseModel:    models.BaseModel{ID: "appt-1"},
			PatientID:    "patient-1",
			PatientName:  "Ahmed Mansour",
			PatientPhone: "+216 55 111 222",
			DoctorID:     "doctor-1",
			Date:         "2024-01-20",
			Time:         "09:00",
			Type:         "Consultation",
			Status:       models.StatusScheduled,
			Reason:       "Suivi diabète",
		},
		{
			BaseModel:    models.BaseModel{ID: "appt-2"},
			PatientID:    "patient-2",
			PatientName:  "Leila Hammami",
			PatientPhone: "+216 50 333 444",
			DoctorID:     "doctor-1",
			Date:         "2024-01-20",
			Time:         "10:30",
			Type:         "Contrôle",
			Status:       models.StatusScheduled,
			Reason:       "Contrôle asthme",
		},
	}
}

func demoConsultations() []models.Consultation {
	return []models.Consultation{
		{
			BaseModel:    models.BaseModel{ID: "consult-1"},
			PatientID:    "patient-1",
			PatientName:  "Ahmed Mansour",
			DoctorID:     "doctor-1",
			Date:         "2024-01-10",
			Time:         "09:30",
			Symptoms:     "Fatigue, soif excessive",
			Diagnosis:    "Diabète type 2 déséquilibré",
			Prescription: "Metformine 850mg, 2 fois par jour",
			Notes:        "Contrôle glycémie dans 1 mois",
		},
	}
}

func demoRevenues() []models.Revenue {
	return []models.Revenue{
		{
			BaseModel:   models.BaseModel{ID: "rev-1"},
			DoctorID:    "doctor-1",
			Amount:      50,
			Date:        "2024-01-10",
			Type:        "consultation",
			Description: "Consultation générale",
			PatientName: "Ahmed Mansour",
		},
		{
			BaseModel:   models.BaseModel{ID: "rev-2"},
			DoctorID:    "doctor-1",
			Amount:      50,
			Date:        "2024-01-12",
			Type:        "consultation",
			Description: "Consultation de contrôle",
			PatientName: "Leila Hammami",
		},
	}
}
