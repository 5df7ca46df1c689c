package domain

// Record kinds. Each kind maps to exactly one collection in the document
// store; the collection name is the lowercase of the kind's name.
const (
	KindUser    = "user"
	KindProduct = "product"
	KindInquiry = "inquiry"
)

// Kinds lists every record kind known to the schema layer, including the
// dormant User kind that no route currently reaches.
var Kinds = []string{KindUser, KindProduct, KindInquiry}
