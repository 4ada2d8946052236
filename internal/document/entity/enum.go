package entity

// DocumentType classifies a stored reference.
type DocumentType string

const (
	DocumentTypeUnknown DocumentType = ""
	DocumentTypePDF     DocumentType = "pdf"
	DocumentTypeDoc     DocumentType = "doc"
	DocumentTypeDocx    DocumentType = "docx"
	DocumentTypePpt     DocumentType = "ppt"
	DocumentTypePptx    DocumentType = "pptx"
	DocumentTypeImage   DocumentType = "image"
	DocumentTypeLink    DocumentType = "link"
	DocumentTypeOther   DocumentType = "other"
)

func DocumentTypeFromString(s string) DocumentType {
	switch s {
	case "pdf":
		return DocumentTypePDF
	case "doc":
		return DocumentTypeDoc
	case "docx":
		return DocumentTypeDocx
	case "ppt":
		return DocumentTypePpt
	case "pptx":
		return DocumentTypePptx
	case "image":
		return DocumentTypeImage
	case "link":
		return DocumentTypeLink
	case "other":
		return DocumentTypeOther
	default:
		return DocumentTypeUnknown
	}
}

func (d DocumentType) String() string {
	return string(d)
}

func (d DocumentType) Valid() bool {
	return d != DocumentTypeUnknown
}
