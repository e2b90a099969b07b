package models

// Unit represents a residential unit of the condominium.
type Unit struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Block  string `json:"block,omitempty"`
}

// Label renders the unit for reports: "Unidade {number}", with
// " - Bloco {block}" appended when the unit belongs to a block.
func (u Unit) Label() string {
	label := "Unidade " + u.Number
	if u.Block != "" {
		label += " - Bloco " + u.Block
	}
	return label
}

// CommonArea represents a bookable shared space.
type CommonArea struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
