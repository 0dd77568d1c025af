package filters

// BaseFilter is the membership contract of gobloom filters. Elements
// are numbers or strings; anything else is gobloom.ErrInvalidArgument.
type BaseFilter interface {
	Insert(element any) error
	Lookup(element any) (bool, error)
}
