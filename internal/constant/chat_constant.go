package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"
)

const (
	EventUserRegistered = "USER_REGISTERED"
	EventPaperUploaded  = "PAPER_UPLOADED"
	EventPaperImported  = "PAPER_IMPORTED"
)
