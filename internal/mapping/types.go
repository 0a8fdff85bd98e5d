package mapping

// Field is a business-object attribute.
type Field struct {
	// Name is the display identifier. Never empty.
	Name string `yaml:"name" json:"name"`
	// Code is the optional machine identifier.
	Code     string `yaml:"code,omitempty" json:"code,omitempty"`
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// CodeOrName returns the machine identifier, falling back to the name.
func (f Field) CodeOrName() string {
	if f.Code != "" {
		return f.Code
	}

	return f.Name
}

// Column is a physical-table attribute.
type Column struct {
	Name    string `yaml:"name" json:"name"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Entry associates one business field with one physical column.
type Entry struct {
	BoField  string `yaml:"boField" json:"boField"`
	TblField string `yaml:"tblField" json:"tblField"`
	Rule     Rule   `yaml:"rule" json:"rule"`
	// Score is the confidence of an automatic proposal.
	// Nil for manual and exact-name entries.
	Score *float64 `yaml:"score,omitempty" json:"score,omitempty"`
}

// HasScore reports whether the entry was proposed by fuzzy matching.
func (e Entry) HasScore() bool {
	return e.Score != nil
}

// ScoreValue returns the score, or 0 when the entry has none.
func (e Entry) ScoreValue() float64 {
	if e.Score == nil {
		return 0
	}

	return *e.Score
}

// Scored returns a pointer to a copy of v, for use as Entry.Score.
func Scored(v float64) *float64 {
	return &v
}

func (e Entry) clone() Entry {
	if e.Score != nil {
		e.Score = Scored(*e.Score)
	}

	return e
}
