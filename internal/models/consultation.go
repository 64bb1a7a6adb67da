package models

// Consultation represents the notes taken during a visit
type Consultation struct {
	BaseModel
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	DoctorID     string `json:"doctorId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Symptoms     string `json:"symptoms"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}
