package dto

// AttributeRef is a feed leaf: a string-encoded numeric id plus display text.
type AttributeRef struct {
	ID   []string `json:"id,omitempty"`
	Text string   `json:"_"`
}

// ModificationRecord is one make/model/modification combination as decoded from the
// catalog feed. Every field is a single-element wrapper; nil optional fields are absent.
type ModificationRecord struct {
	Modification []AttributeRef `json:"Modification"`
	Model        []AttributeRef `json:"Model"`
	Transmission []AttributeRef `json:"Transmission"`
	BodyType     []AttributeRef `json:"BodyType"`
	DriveType    []AttributeRef `json:"DriveType"`
	YearFrom     []AttributeRef `json:"YearFrom,omitempty"`
	YearTo       []AttributeRef `json:"YearTo,omitempty"`
	EngineSize   []AttributeRef `json:"EngineSize,omitempty"`
	Power        []AttributeRef `json:"Power,omitempty"`
}

// Ref is a convenience constructor for a single-element wrapper.
func Ref(id, text string) []AttributeRef {
	ref := AttributeRef{Text: text}
	if id != "" {
		ref.ID = []string{id}
	}
	return []AttributeRef{ref}
}
