package api

// Subject is one subject row as typed into a form.
type Subject struct {
	Code   string `json:"code"`
	Credit string `json:"credit"`
	Grade  string `json:"grade"`
}

// SubjectEntry is a stored subject.
type SubjectEntry struct {
	Code   string  `json:"code"`
	Credit float64 `json:"credit"`
	Grade  float64 `json:"grade"`
}

// Semester is a stored semester GPA record.
type Semester struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	GPA           string         `json:"gpa"`
	Subjects      []SubjectEntry `json:"subjects"`
	TotalCredits  float64        `json:"totalCredits"`
	TotalWeighted float64        `json:"totalWeighted"`
	Date          string         `json:"date"`
}

// Overall is a stored overall GPA record.
type Overall struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	OGPA          string   `json:"ogpa"`
	TotalCredits  float64  `json:"totalCredits"`
	TotalWeighted float64  `json:"totalWeighted"`
	Semesters     []string `json:"semesters"`
	Date          string   `json:"date"`
}

type CalculateSemesterRequest struct {
	Subjects []Subject `json:"subjects"`
}

type CalculateSemesterResponse struct {
	TotalCredits  float64 `json:"totalCredits"`
	TotalWeighted float64 `json:"totalWeighted"`
	GPA           string  `json:"gpa"`
}

type SaveSemesterRequest struct {
	// ID of the semester to edit; empty creates a new one.
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Subjects []Subject `json:"subjects"`
}

type SaveSemesterResponse struct {
	Semester Semester `json:"semester"`

	// Saved is false when the subjects carry no credits; the GPA is then
	// "0.00" and nothing was stored.
	Saved bool `json:"saved"`
}

type ListSemestersRequest struct{}

type ListSemestersResponse struct {
	Semesters []Semester `json:"semesters"`
}

type DeleteSemesterRequest struct {
	ID string `json:"id"`
}

type DeleteSemesterResponse struct{}

type ClearSemestersRequest struct{}

type ClearSemestersResponse struct{}

type SaveOverallRequest struct {
	// ID of the overall record to edit; empty creates a new one.
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	SemesterIDs []string `json:"semesterIds"`
}

type SaveOverallResponse struct {
	Overall Overall `json:"overall"`
}

type ListOverallsRequest struct{}

type ListOverallsResponse struct {
	Overalls []Overall `json:"overalls"`
}

type GetOverallRequest struct {
	ID string `json:"id"`
}

type GetOverallResponse struct {
	Overall Overall `json:"overall"`

	// Semesters are the referenced semesters that still exist, in
	// selection order.
	Semesters []Semester `json:"semesters"`
}

type DeleteOverallRequest struct {
	ID string `json:"id"`
}

type DeleteOverallResponse struct{}

type ClearOverallsRequest struct{}

type ClearOverallsResponse struct{}

type AverageGPARequest struct {
	// GPAs are semester GPAs as typed, e.g. ["3.5", "3.8"].
	GPAs []string `json:"gpas"`
}

type AverageGPAResponse struct {
	CGPA string `json:"cgpa"`
}

type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

type LoginResponse struct {
	Token string `json:"token"`

	// ExpiresAt is a Unix timestamp.
	ExpiresAt int64 `json:"expiresAt"`
}
