package models

import "time"

type Institution struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Curriculum struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SourceCourse is a course taken at the student's previous institution.
type SourceCourse struct {
	ID          int          `json:"id"`
	Code        string       `json:"course_code"`
	Name        string       `json:"course_name_th"`
	Credits     int          `json:"credits"`
	Description string       `json:"course_description"`
	Institution *Institution `json:"institution,omitempty"`
}

// TargetCourse is a course of the curriculum the student transfers into.
type TargetCourse struct {
	ID          int         `json:"id"`
	Code        string      `json:"course_code"`
	Name        string      `json:"course_name_th"`
	Credits     int         `json:"credits"`
	Description string      `json:"course_description"`
	Curriculum  *Curriculum `json:"curriculum,omitempty"`
}

// Comparison is the server-computed course match attached to an item.
type Comparison struct {
	SuggestedCourse TargetCourse `json:"suggested_course"`
	SimilarityScore float64      `json:"similarity_score"`
	Explanation     string       `json:"explanation"`
}

type StudentProfile struct {
	StudentID string `json:"student_id"`
	Major     string `json:"major"`
}

type Student struct {
	ID        int             `json:"id"`
	Username  string          `json:"username"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Profile   *StudentProfile `json:"profile"`
}

// FullName joins first and last name, falling back to the username.
func (s Student) FullName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	case s.LastName != "":
		return s.LastName
	default:
		return s.Username
	}
}

// StudentID returns the profile's student id or "N/A".
func (s Student) StudentID() string {
	if s.Profile == nil || s.Profile.StudentID == "" {
		return "N/A"
	}
	return s.Profile.StudentID
}

// RequestItem is one course-equivalency line of a TransferRequest.
//
// InitialStatus is client-only: it holds the status observed at fetch
// time and is never sent to or read from the server.
type RequestItem struct {
	ID             int          `json:"id"`
	OriginalCourse SourceCourse `json:"original_course"`
	Grade          string       `json:"grade"`
	Status         Status       `json:"status"`
	Comparison     *Comparison  `json:"aicomparisonresult"`

	InitialStatus Status `json:"-"`
}

// Changed reports whether the live status differs from the fetched one.
func (i RequestItem) Changed() bool {
	return i.Status != i.InitialStatus
}

// TransferRequest is one student's submission.
type TransferRequest struct {
	ID               int           `json:"id"`
	Student          Student       `json:"student"`
	Status           Status        `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	TargetCurriculum *Curriculum   `json:"target_curriculum"`
	Items            []RequestItem `json:"items"`
	EvidenceFile     *string       `json:"evidence_file"`
}

// CurriculumName returns the target curriculum name or a placeholder.
func (r TransferRequest) CurriculumName() string {
	if r.TargetCurriculum == nil || r.TargetCurriculum.Name == "" {
		return "not specified"
	}
	return r.TargetCurriculum.Name
}

// Clone returns a deep copy whose Items slice can be mutated freely.
func (r TransferRequest) Clone() TransferRequest {
	out := r
	if r.Items != nil {
		out.Items = make([]RequestItem, len(r.Items))
		copy(out.Items, r.Items)
	}
	return out
}
