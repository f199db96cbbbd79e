package model

// Kind identifies which document family a piece of content belongs to.
type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover_letter"
)

// Valid reports whether k is a known document kind.
func (k Kind) Valid() bool {
	return k == KindResume || k == KindCoverLetter
}

// ResumeContent is the canonical resume payload.
type ResumeContent struct {
	Header         ResumeHeader          `json:"header"`
	Summary        string                `json:"summary"`
	Skills         []string              `json:"skills"`
	Experience     []ResumeExperience    `json:"experience"`
	Education      []ResumeEducation     `json:"education"`
	Projects       []ResumeProject       `json:"projects"`
	Certifications []ResumeCertification `json:"certifications"`
}

// ResumeHeader captures top-of-resume contact and identity details.
type ResumeHeader struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Links    []string `json:"links"`
}

// ResumeExperience is one role entry.
type ResumeExperience struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Location   string   `json:"location"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Highlights []string `json:"highlights"`
}

// ResumeEducation is one education entry.
type ResumeEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// ResumeProject is one project entry.
type ResumeProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// ResumeCertification is one certification entry.
type ResumeCertification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// CoverLetterContent is the canonical cover letter payload.
type CoverLetterContent struct {
	Sender    CoverLetterSender    `json:"sender"`
	Recipient CoverLetterRecipient `json:"recipient"`
	Content   CoverLetterBody      `json:"content"`
	Date      string               `json:"date"`
}

// CoverLetterSender identifies the letter author.
type CoverLetterSender struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Location string `json:"location"`
	JobTitle string `json:"job_title"`
}

// CoverLetterRecipient identifies the addressee.
type CoverLetterRecipient struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Address string `json:"address"`
}

// CoverLetterBody holds the letter text in three parts.
type CoverLetterBody struct {
	Introduction string `json:"introduction"`
	Body         string `json:"body"`
	Closing      string `json:"closing"`
}

// NormalizedContent is the validated, fully-defaulted content handed to the
// rendering engine. Exactly one of Resume/CoverLetter is set, matching Kind.
type NormalizedContent struct {
	Kind        Kind
	Resume      *ResumeContent
	CoverLetter *CoverLetterContent
}
