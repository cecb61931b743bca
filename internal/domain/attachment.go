package domain

type AttachmentOwner string

const (
	AttachmentOwnerPayment  AttachmentOwner = "payment"
	AttachmentOwnerCustomer AttachmentOwner = "customer"
)

type Attachment struct {
	ID         int32           `json:"id"`
	OwnerType  AttachmentOwner `json:"ownerType"`
	OwnerID    int32           `json:"ownerId"`
	FileName   string          `json:"fileName"`
	StorageKey string          `json:"storageKey"`
	MimeType   string          `json:"mimeType"`
	FileSize   int64           `json:"fileSize"`
	CreatedOn  string          `json:"created_on"`
}
