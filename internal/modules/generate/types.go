package generate

// Mode selects the prompt template and response shape.
type Mode string

const (
	ModeSolve     Mode = "solve"
	ModeSummarize Mode = "summarize"
	ModeMCQ       Mode = "mcq"
)

const (
	defaultMCQCount   = 5
	defaultComplexity = "medium"
	defaultLanguage   = "english"
)

// Request is a validated, normalized generation request.
type Request struct {
	Mode       Mode
	Subject    string
	Content    string
	FileData   string // base64, optionally data-URL-prefixed
	FileName   string
	FileType   string
	Count      int    // MCQ count
	Complexity string // easy | medium | difficult
	Language   string // english | urdu | both
}

type generateDTO struct {
	Type       string `json:"type"       binding:"required,oneof=solve summarize mcq"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
	FileData   string `json:"fileData"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	Count      int    `json:"count"      binding:"omitempty,gt=0"`
	Complexity string `json:"complexity" binding:"omitempty,oneof=easy medium difficult"`
	Language   string `json:"language"   binding:"omitempty,oneof=english urdu both"`
}

func (d generateDTO) toRequest() Request {
	req := Request{
		Mode:       Mode(d.Type),
		Subject:    d.Subject,
		Content:    d.Content,
		FileData:   d.FileData,
		FileName:   d.FileName,
		FileType:   d.FileType,
		Count:      d.Count,
		Complexity: d.Complexity,
		Language:   d.Language,
	}
	if req.Count <= 0 {
		req.Count = defaultMCQCount
	}
	if req.Complexity == "" {
		req.Complexity = defaultComplexity
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}
	return req
}

type generateResponse struct {
	Result    string `json:"result"`
	Remaining int    `json:"remaining"`
}
