package domain

// View selects which of the five dashboard panels is active.
type View string

const (
	ViewCatalogue View = "catalogue"
	ViewCart      View = "cart"
	ViewConfirm   View = "confirm"
	ViewStatus    View = "status"
	ViewHistory   View = "history"
)

func (v View) IsValid() bool {
	switch v {
	case ViewCatalogue, ViewCart, ViewConfirm, ViewStatus, ViewHistory:
		return true
	}
	return false
}

func (v View) String() string {
	return string(v)
}
