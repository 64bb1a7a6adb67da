package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled visit. Patient name and phone are
// copied from the patient when the appointment is created.
type Appointment struct {
	BaseModel
	PatientID    string            `json:"patientId"`
	PatientName  string            `json:"patientName"`
	PatientPhone string            `json:"patientPhone"`
	DoctorID     string            `json:"doctorId"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Type         string            `json:"type"`
	Status       AppointmentStatus `json:"status"`
	Reason       string            `json:"reason"`
}
