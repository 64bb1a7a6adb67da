package models

// Revenue represents an amount collected by a doctor
type Revenue struct {
	BaseModel
	DoctorID    string  `json:"doctorId"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	PatientName string  `json:"patientName"`
}
