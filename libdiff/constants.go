package libdiff

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Mark is the prefix of a line of the given kind in formatted output.
func (o Op) Mark() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

func (o Op) String() string {
	return map[Op]string{
		Equal:  "equal",
		Delete: "delete",
		Insert: "insert",
	}[o]
}
