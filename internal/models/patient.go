package models

// Disease is a condition shown on the patient card
type Disease struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Patient represents a patient followed by a doctor of the practice
type Patient struct {
	BaseModel
	Name               string    `json:"name"`
	Age                int       `json:"age"`
	Gender             string    `json:"gender"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	Job                string    `json:"job"`
	Diseases           []Disease `json:"diseases"`
	DoctorID           string    `json:"doctorId"`
	ConsultationsCount int       `json:"consultationsCount"`
	LastVisit          string    `json:"lastVisit"`
}
