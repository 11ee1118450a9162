package form

type Widget uint8

const (
	WidgetInput Widget = iota
	WidgetTextarea
	WidgetSelect
)

func (w Widget) String() string {
	switch w {
	case WidgetTextarea:
		return "textarea"
	case WidgetSelect:
		return "select"
	default:
		return "input"
	}
}

type Option struct {
	Value string
	Label string
}

// Field describes one form control bound to a string field of T.
// Set is the only way a posted value reaches the typed record.
type Field[T any] struct {
	Name        string
	Label       string
	Placeholder string
	Widget      Widget
	Rows        int
	Required    bool
	Options     []Option
	Default     string
	Set         func(rec *T, value string)
}

type Section[T any] struct {
	Id     string
	Title  string
	Icon   string
	Fields []Field[T]
}

func (s *Section[T]) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}

	return names
}

type Schema[T any] struct {
	Sections []Section[T]
}

// Bind turns an accessor of a string field into a setter
func Bind[T any](ref func(rec *T) *string) func(*T, string) {
	return func(rec *T, value string) {
		*ref(rec) = value
	}
}

// Section returns nil for unknown ids
func (s *Schema[T]) Section(id string) *Section[T] {
	for ix := range s.Sections {
		if s.Sections[ix].Id == id {
			return &s.Sections[ix]
		}
	}

	return nil
}

func (s *Schema[T]) Names() []string {
	var names []string
	for ix := range s.Sections {
		names = append(names, s.Sections[ix].Names()...)
	}

	return names
}

// Seed builds the initial state: every field present, holding its default
func (s *Schema[T]) Seed() State {
	var st State
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			st = st.MustSet(f.Name, f.Default)
		}
	}

	return st
}

// Decode copies the state into a fresh record through each field's setter.
// Fields missing from the state keep their default.
func (s *Schema[T]) Decode(st State) T {
	var rec T
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			v, ok := st.Lookup(f.Name)
			if !ok {
				v = f.Default
			}
			f.Set(&rec, v)
		}
	}

	return rec
}

// Missing lists required fields left empty, along with the section holding them
func (s *Schema[T]) Missing(st State) []Missing {
	var ret []Missing
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if f.Required && st.Get(f.Name) == "" {
				ret = append(ret, Missing{Section: sec.Id, Name: f.Name, Label: f.Label})
			}
		}
	}

	return ret
}

type Missing struct {
	Section string
	Name    string
	Label   string
}
