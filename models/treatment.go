package models

// Treatment is a bookable service with the full slot list for a generic day.
type Treatment struct {
	ID    string   `bson:"id" json:"_id,omitempty" yaml:"id"`
	Name  string   `bson:"name" json:"name" yaml:"name"`
	Slots []string `bson:"slots" json:"slots" yaml:"slots"`
	Price float64  `bson:"price,omitempty" json:"price,omitempty" yaml:"price"`
}

// TreatmentSummary is the projected view served by the treatment listing.
type TreatmentSummary struct {
	ID   string `bson:"id" json:"_id"`
	Name string `bson:"name" json:"name"`
}

// HasSlot reports whether slot is one of the treatment's catalog slots.
func (t Treatment) HasSlot(slot string) bool {
	for _, s := range t.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
