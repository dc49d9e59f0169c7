package model

// Document is a single stored record of a collection (stores, users, ...)
// Body holds the JSON encoded fields; lookups go through DocumentField.
type Document struct {
	ID         string `gorm:"column:id;type:VARCHAR2(36);primaryKey"`                                      // uuid
	Collection string `gorm:"column:collection;type:VARCHAR2(100);not null;index:idx_document_collection"` // 컬렉션 이름
	Body       string `gorm:"column:body;type:CLOB;not null"`                                              // JSON 본문

	BaseEntity
}

// TableName specifies the table name for Document
func (*Document) TableName() string {
	return "documents"
}

// DocumentField indexes one top-level field of a Document so that
// documents can be queried by (collection, field, value).
type DocumentField struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	DocumentID string `gorm:"column:document_id;type:VARCHAR2(36);not null;index:idx_document_field_document"`
	Collection string `gorm:"column:collection;type:VARCHAR2(100);not null;index:idx_document_field_lookup,priority:1"`
	FieldName  string `gorm:"column:field_name;type:VARCHAR2(100);not null;index:idx_document_field_lookup,priority:2"`
	FieldValue string `gorm:"column:field_value;type:VARCHAR2(4000);not null"`

	// UniqueKey is set only for fields declared unique on insert.
	// NULL rows are not part of the unique index.
	UniqueKey *string `gorm:"column:unique_key;type:VARCHAR2(64);uniqueIndex:idx_document_field_unique"`

	BaseEntity
}

// TableName specifies the table name for DocumentField
func (*DocumentField) TableName() string {
	return "document_fields"
}

// NewDocument creates a new Document instance
func NewDocument(id, collection, body string) *Document {
	return &Document{
		ID:         id,
		Collection: collection,
		Body:       body,
	}
}
