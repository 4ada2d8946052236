package event

const DocumentUploadedDestination string = "goalnet_document_uploaded"
const DocumentUploadedConsumerExtraction string = "goalnet_document_uploaded_extraction"

type DocumentUploadedMessage struct {
	DocumentID int64  `json:"document_id"`
	UserID     int64  `json:"user_id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	MimeType   string `json:"mime_type"`
}
